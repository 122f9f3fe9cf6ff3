// Command sessions is a maintenance utility for the on-disk session store:
// it lists stored sessions and removes stale records.
//
// Usage:
//
//	sessions list [status]
//	sessions cleanup [days]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/examtools/vceplay/internal/config"
	"github.com/examtools/vceplay/internal/logger"
	"github.com/examtools/vceplay/internal/model"
	"github.com/examtools/vceplay/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	sessionStore, err := store.NewSessionStore(cfg.SessionDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open session store")
	}

	command := "list"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "list":
		status := model.SessionStatus("")
		if len(os.Args) > 2 {
			status = model.SessionStatus(os.Args[2])
		}
		summaries, err := sessionStore.List(status)
		if err != nil {
			log.Fatal().Err(err).Msg("Listing failed")
		}
		if len(summaries) == 0 {
			fmt.Println("no stored sessions")
			return
		}
		for _, s := range summaries {
			score := "-"
			if s.Score != nil {
				score = strconv.Itoa(*s.Score) + "%"
			}
			fmt.Printf("%-24s  %-12s  %-6s  %s  %s\n",
				s.ID, s.Status, score, s.StartTime.Format("2006-01-02 15:04"), s.ExamTitle)
		}

	case "cleanup":
		days := cfg.SessionMaxAgeDays
		if len(os.Args) > 2 {
			if n, err := strconv.Atoi(os.Args[2]); err == nil {
				days = n
			}
		}
		removed := sessionStore.Cleanup(days)
		fmt.Printf("removed %d session record(s) older than %d days\n", removed, days)

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\nusage: sessions list [status] | cleanup [days]\n", command)
		os.Exit(2)
	}
}
