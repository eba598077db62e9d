package config

import "os"

// Template returns a starter station config file.
func Template() string {
	return stationTemplate
}

// WriteTemplate writes the starter template to path, refusing to
// overwrite an existing file unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return &os.PathError{Op: "writetemplate", Path: path, Err: os.ErrExist}
		}
	}
	return os.WriteFile(path, []byte(stationTemplate), 0o600)
}

const stationTemplate = `team_number = 4499
alliance = "red"
position = 1
admin_addr = ":9110"
cors_origins = ["http://localhost:3000"]
log_level = "info"
`
