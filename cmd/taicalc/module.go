package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/sessions"
)

type Module struct {
	dscope.Module
	Sessions sessions.Module
}
