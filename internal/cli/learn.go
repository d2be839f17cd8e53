package cli

import (
	"fmt"
	"strings"

	"github.com/chronox22/eco-gamer-collective/internal/catalog"
	"github.com/chronox22/eco-gamer-collective/internal/constants"
	"github.com/chronox22/eco-gamer-collective/internal/models"
)

type LearnCmd struct {
	Article  string `arg:"" optional:"" help:"Article ID to read. Lists articles when omitted."`
	Category string `short:"c" help:"Only list articles in this category."`
	JSON     bool   `help:"Print as JSON."`
	Plain    bool   `help:"Print markdown without terminal styling."`
}

func (c *LearnCmd) Run(ctx *Context) error {
	if c.Article != "" {
		return c.read(ctx)
	}

	articles := catalog.Articles(c.Category)
	if len(articles) == 0 {
		return fmt.Errorf("no articles in category %q (available: %s)",
			c.Category, strings.Join(catalog.ArticleCategories(), ", "))
	}
	if c.JSON {
		return printJSON(ctx, articles)
	}

	for _, a := range articles {
		ctx.Printf("%-18s %-8s %2d min  %s\n", a.ID, a.Category, a.ReadMinutes, a.Title)
	}
	ctx.Println()
	ctx.Printf("Read one with '%s learn <id>'.\n", constants.AppName)
	return nil
}

func (c *LearnCmd) read(ctx *Context) error {
	a, ok := catalog.LookupArticle(c.Article)
	if !ok {
		return fmt.Errorf("unknown article %q", c.Article)
	}
	if c.JSON {
		return printJSON(ctx, a)
	}

	md := ArticleMarkdown(a)
	if c.Plain {
		ctx.Printf("%s", md)
		return nil
	}
	ctx.Printf("%s", render(md))
	return nil
}

// ArticleMarkdown renders an article as a markdown document.
func ArticleMarkdown(a models.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	fmt.Fprintf(&b, "_%s · %d min read_\n\n", a.Category, a.ReadMinutes)
	fmt.Fprintf(&b, "**%s**\n\n", a.Excerpt)
	for _, p := range a.Body {
		fmt.Fprintf(&b, "%s\n\n", p)
	}
	return b.String()
}
