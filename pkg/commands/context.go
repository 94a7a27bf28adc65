package commands

import (
	"context"

	"vectorprime/pkg/ui/components/analyze"
)

// DefaultWidth is used when the output width is unknown.
const DefaultWidth = 80

// Context provides what a command needs to run.
type Context struct {
	Ctx      context.Context
	Args     string
	Analyzer analyze.Analyzer
	Width    int
}

// NewContext creates a command context with the default width.
func NewContext(ctx context.Context, args string, analyzer analyze.Analyzer) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Ctx:      ctx,
		Args:     args,
		Analyzer: analyzer,
		Width:    DefaultWidth,
	}
}
