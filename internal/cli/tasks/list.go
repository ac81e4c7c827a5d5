package tasks

import (
	"fmt"
	"strings"

	"github.com/julianstephens/dayboard/internal/board"
	"github.com/julianstephens/dayboard/internal/cli"
)

// TaskListCmd prints the board. It is also mounted as the top-level
// "board" command.
type TaskListCmd struct {
	Search string   `short:"s" help:"Only show tasks whose title or description contains this text."`
	Bucket []string `short:"b" help:"Buckets to show (backlog, today, habits, completed, discarded)."`
	All    bool     `short:"a" help:"Show empty buckets too."`
}

func (c *TaskListCmd) Validate() error {
	for _, name := range c.Bucket {
		if _, ok := bucketByName(name); !ok {
			return fmt.Errorf("unknown bucket %q", name)
		}
	}
	return nil
}

func bucketByName(name string) (board.Bucket, bool) {
	for _, bucket := range board.Buckets {
		if strings.EqualFold(bucket.String(), name) {
			return bucket, true
		}
	}
	return 0, false
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	b := ctx.Engine.Board()
	if c.Search != "" {
		b = b.Filter(c.Search)
	}

	buckets := board.Buckets
	if len(c.Bucket) > 0 {
		buckets = nil
		for _, name := range c.Bucket {
			if bucket, ok := bucketByName(name); ok {
				buckets = append(buckets, bucket)
			}
		}
	}

	cli.RenderBoard(ctx.Out, b, buckets, c.All)
	return nil
}
