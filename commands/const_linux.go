package commands

const (
	_etc = "/usr/local/etc/uhppoted"
	_var = "/usr/local/var/uhppoted"

	DEFAULT_WORKDIR     = _var + "/attendance"
	DEFAULT_CREDENTIALS = _etc + "/attendance/.google/credentials.json"
	DEFAULT_CONFIG      = _etc + "/attendance/attendance.env"
)
