package main

import "github.com/BurntSushi/toml"

// config is the optional `--config gram.toml` convenience layer: default
// values for flags the user didn't pass explicitly on the command line.
// Grounded on tunaq's internal/tqw resource-file pattern (toml.DecodeFile
// into a plain tagged struct); unlike tqw's world-resource files this is a
// thin settings layer, not the program's primary input.
type config struct {
	Grammar string `toml:"grammar"`
	Mode    string `toml:"mode"`
	Trace   string `toml:"trace"`
}

func loadConfig(path string) (*config, error) {
	var c config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
