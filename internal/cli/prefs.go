package cli

import "fmt"

// PrefsCmd shows or updates presentation preferences.
type PrefsCmd struct {
	Theme  string `help:"Set the theme."`
	Layout string `help:"Set the layout."`
}

func (c *PrefsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	prefs, err := ctx.Store.GetPrefs()
	if err != nil {
		return err
	}

	if c.Theme != "" || c.Layout != "" {
		if c.Theme != "" {
			prefs.Theme = c.Theme
		}
		if c.Layout != "" {
			prefs.Layout = c.Layout
		}
		if err := ctx.Store.SavePrefs(prefs); err != nil {
			return err
		}
	}

	fmt.Printf("Theme:  %s\nLayout: %s\n", prefs.Theme, prefs.Layout)
	return nil
}
