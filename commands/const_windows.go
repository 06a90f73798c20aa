package commands

const (
	_etc = `C:\ProgramData\uhppoted`
	_var = `C:\ProgramData\uhppoted`

	DEFAULT_WORKDIR     = _var + `\attendance`
	DEFAULT_CREDENTIALS = _etc + `\attendance\.google\credentials.json`
	DEFAULT_CONFIG      = _etc + `\attendance\attendance.env`
)
