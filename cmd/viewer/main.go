// Command viewer dumps the persisted counting records without the bot
// running. It opens badger read-only, so it is safe against a live instance.
package main

import (
	"charlie/repositories"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	Prefix         string `envconfig:"VIEWER_PREFIX" default:"count:"`
	Colours        bool   `envconfig:"VIEWER_COLOURS" default:"true"`
}

func main() {
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if !config.Colours {
		color.Disable()
	}

	// BypassLockGuard allows opening while the bot holds the directory lock.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(config.Prefix)
		found := false
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			channel := strings.TrimPrefix(string(item.Key()), config.Prefix)

			err := item.Value(func(v []byte) error {
				var record repositories.Record
				if err := json.Unmarshal(v, &record); err != nil {
					// Keep going, one corrupted record should not hide the rest.
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				found = true
				printRecord(channel, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		if !found {
			color.Gray.Println("No counting records found.")
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}

func printRecord(channel string, record repositories.Record) {
	color.Cyan.Printf("Channel %s\n", channel)
	fmt.Printf("  Count: %d (next is %d)\n", record.State.Current, record.State.NextCount())
	if record.State.LastAuthor != "" {
		fmt.Printf("  Last counted by: %s\n", record.State.LastAuthor)
	}
	color.Yellow.Printf("  Best streak: %d", record.State.Best)
	if record.State.BestHolder != "" {
		fmt.Printf(" (held by %s)", record.State.BestHolder)
	}
	fmt.Println()

	if len(record.Board.Entries) == 0 {
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Rank", "User", "Highest", "Counted", "Mistakes"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, entry := range record.Board.Entries {
		table.Append([]string{
			fmt.Sprintf("#%d", entry.Rank),
			string(entry.UserID),
			fmt.Sprintf("%d", entry.HighestCount),
			fmt.Sprintf("%d", entry.TimesCounted),
			fmt.Sprintf("%d", entry.MistakesMade),
		})
	}
	table.Render()
}
