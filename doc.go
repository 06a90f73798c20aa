// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package uhppoted-app-attendance maintains a simple attendance register stored as a Google Sheets (or Excel) workbook.

The attendance worksheet ('Sheet1' by default) holds one row per person with the columns id, name, date and status. A
second, append-only worksheet ('Person_Master' by default) records newly registered people.

uhppoted-app-attendance supports the following commands:

  - authorise, to authorise application access to the Google Sheets workbook
  - search, to find the attendance records matching a (partial) name
  - mark, to mark an attendance record as 'Present' for a date
  - add, to append a new person to the 'Person_Master' worksheet
  - serve, to run an HTTP endpoint that returns the matching attendance records as JSON
*/
package attendance
