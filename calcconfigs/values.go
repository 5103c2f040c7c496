package calcconfigs

import (
	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/vars"
)

type Color bool

type ShowBanner bool

type Prompt string

const DefaultPrompt = ">>> "

var (
	noColorFlag  = cmds.Switch("-no-color", "disable ANSI colors")
	noBannerFlag = cmds.Switch("-no-banner", "do not print the banner")
	promptFlag   = cmds.Var[string]("-prompt", "prompt of expression mode")
)

// lookup treats an unreadable or invalid config like a missing value, so a bad
// file costs a log line, not the session.
func lookup[T any](loader configs.Loader, logger logs.Logger, path string) (ret T, ok bool) {
	ret, ok, err := configs.Lookup[T](loader, path)
	if err != nil {
		logger.Error("config",
			"path", path,
			"error", err,
		)
		var zero T
		return zero, false
	}
	return ret, ok
}

func (Module) Color(
	loader configs.Loader,
	logger logs.Logger,
) Color {
	if *noColorFlag {
		return false
	}
	color, ok := lookup[bool](loader, logger, "color")
	if !ok {
		return true
	}
	return Color(color)
}

func (Module) ShowBanner(
	loader configs.Loader,
	logger logs.Logger,
) ShowBanner {
	if *noBannerFlag {
		return false
	}
	banner, ok := lookup[bool](loader, logger, "banner")
	if !ok {
		return true
	}
	return ShowBanner(banner)
}

// Prompt skips empty prompts, so a file can not blank out the default.
func (Module) Prompt(
	loader configs.Loader,
	logger logs.Logger,
) Prompt {
	prompts := []string{*promptFlag}
	for prompt, err := range configs.All[string](loader, "prompt") {
		if err != nil {
			logger.Error("config",
				"path", "prompt",
				"error", err,
			)
			break
		}
		prompts = append(prompts, prompt)
	}
	prompts = append(prompts, DefaultPrompt)
	return Prompt(vars.FirstNonZero(prompts...))
}
