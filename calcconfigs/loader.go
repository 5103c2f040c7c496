package calcconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/logs"
)

//go:embed schema.cue
var Schema string

var filenames = []string{
	"taicalc.cue",
	".taicalc.cue",
}

// ConfigDirs lists the directories searched for config files, most specific
// first.
type ConfigDirs []string

func (Module) ConfigDirs() (ret ConfigDirs) {
	if workingDir, err := os.Getwd(); err == nil {
		ret = append(ret, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, configDir)
	}
	ret = append(ret, "/etc")
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs ConfigDirs,
) configs.Loader {
	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, Schema)
}
