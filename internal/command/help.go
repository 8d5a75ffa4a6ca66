package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/keshon/monday-bot/internal/config"
	"github.com/keshon/monday-bot/internal/persona"
	"github.com/keshon/monday-bot/pkg/cmd"
)

type HelpCommand struct {
	deps *Deps
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "List what Monday will reluctantly do" }
func (c *HelpCommand) Aliases() []string   { return []string{"commands"} }
func (c *HelpCommand) Category() string    { return categoryInfo }

func (c *HelpCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	req, err := RequestFrom(inv)
	if err != nil {
		return err
	}
	return req.Reply(ctx, buildHelp(c.deps.Registry, c.deps.Prefix))
}

func buildHelp(reg *cmd.Registry, prefix string) string {
	byCategory := make(map[string][]cmd.Command)
	for _, c := range reg.GetAll() {
		cat := ""
		if cc, ok := cmd.Root(c).(Categorized); ok {
			cat = cc.Category()
		}
		byCategory[cat] = append(byCategory[cat], c)
	}

	cats := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		wi, wj := config.CategoryWeights[cats[i]], config.CategoryWeights[cats[j]]
		if wi != wj {
			return wi < wj
		}
		return cats[i] < cats[j]
	})

	var sb strings.Builder
	sb.WriteString("Fine. Here's what I do, since you clearly can't figure it out yourself:\n")
	for _, cat := range cats {
		if cat != "" {
			fmt.Fprintf(&sb, "\n**%s**\n", cat)
		} else {
			sb.WriteString("\n")
		}
		for _, c := range byCategory[cat] {
			usage := ""
			if up, ok := cmd.Root(c).(cmd.UsageProvider); ok && up.Usage() != "" {
				usage = " " + up.Usage()
			}
			fmt.Fprintf(&sb, "`%s%s%s` - %s\n", prefix, c.Name(), usage, c.Description())
		}
	}
	sb.WriteString("\nTry not to break anything." + persona.Sign)
	return sb.String()
}
