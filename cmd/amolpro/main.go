package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/tamimhossen6238-cell/amolpro/internal/cli"
	"github.com/tamimhossen6238-cell/amolpro/internal/engine"
	"github.com/tamimhossen6238-cell/amolpro/internal/errors"
	"github.com/tamimhossen6238-cell/amolpro/internal/logger"
	"github.com/tamimhossen6238-cell/amolpro/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path (.json for a JSON store, anything else for SQLite)." type:"path" default:"~/.config/amolpro/amolpro.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize amolpro storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Open the focus-mode counter." default:"1"`
	Tick    cli.TickCmd    `cmd:"" help:"Run due rollovers and deliveries, then exit."`
	Count   cli.CountCmd   `cmd:"" help:"Record tasbih repetitions."`
	Time    cli.TimeCmd    `cmd:"" help:"Set today's time spent on a tasbih."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show level, neki, XP and streak."`
	History cli.HistoryCmd `cmd:"" help:"Show archived days."`
	Tasbih  struct {
		Add    cli.TasbihAddCmd    `cmd:"" help:"Add a tasbih."`
		Edit   cli.TasbihEditCmd   `cmd:"" help:"Edit a tasbih."`
		Delete cli.TasbihDeleteCmd `cmd:"" help:"Delete a tasbih."`
		List   cli.TasbihListCmd   `cmd:"" help:"List tasbihs."`
	} `cmd:"" help:"Manage tasbihs."`
	Target struct {
		Add    cli.TargetAddCmd    `cmd:"" help:"Add a target amol."`
		Done   cli.TargetDoneCmd   `cmd:"" help:"Mark a target completed."`
		Edit   cli.TargetEditCmd   `cmd:"" help:"Edit a target."`
		Delete cli.TargetDeleteCmd `cmd:"" help:"Delete a target."`
		List   cli.TargetListCmd   `cmd:"" help:"List targets."`
	} `cmd:"" help:"Manage target amols."`
	Journal struct {
		Add    cli.JournalAddCmd    `cmd:"" help:"Record a good deed."`
		Edit   cli.JournalEditCmd   `cmd:"" help:"Edit a recent entry."`
		Delete cli.JournalDeleteCmd `cmd:"" help:"Delete an entry."`
		List   cli.JournalListCmd   `cmd:"" help:"List entries."`
	} `cmd:"" help:"Good deeds journal."`
	Inbox struct {
		List   cli.InboxListCmd   `cmd:"" help:"List messages."`
		Read   cli.InboxReadCmd   `cmd:"" help:"Read a message."`
		Delete cli.InboxDeleteCmd `cmd:"" help:"Delete messages."`
		Purge  cli.InboxPurgeCmd  `cmd:"" help:"Clear the inbox."`
		Claim  cli.InboxClaimCmd  `cmd:"" help:"Claim neki from an offer message."`
	} `cmd:"" help:"Inbox."`
	Garden cli.GardenListCmd `cmd:"" help:"Show your garden."`
	Prefs  cli.PrefsCmd      `cmd:"" help:"Show or set presentation preferences."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("amolpro"),
		kong.Description("Personal tasbih counter, good-deed journal and amol tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	eng, err := engine.New(store)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: eng,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
