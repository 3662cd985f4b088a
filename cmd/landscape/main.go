package main

import (
	"github.com/bianlab/landscape/internal/command"
	"github.com/bianlab/landscape/internal/command/check"
	"github.com/bianlab/landscape/internal/command/render"
	"github.com/bianlab/landscape/internal/command/search"
	"github.com/bianlab/landscape/internal/command/serve"
)

func main() {
	command.Main(
		"landscape",
		"Browse and render banking landscape diagrams",
		serve.Command(),
		render.Command(),
		search.Command(),
		check.Command(),
	)
}
