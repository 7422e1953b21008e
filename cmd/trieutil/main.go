// Command trieutil is a small CLI over pkg/trie: build a trie from a
// newline-delimited word list and run exact, fuzzy, substring, and
// longest-prefix queries against it.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/prefixtrie/internal/logger"
	"github.com/bastiangx/prefixtrie/pkg/config"
	"github.com/bastiangx/prefixtrie/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	dictPath   string
	configPath string
	budget     int
	allowIndel bool
	minLen     int

	cfg *config.Config
	lg  = logger.Quiet("trieutil")
)

func main() {
	root := &cobra.Command{
		Use:   "trieutil",
		Short: "Query and mutate a prefix trie from the command line",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, _, err := config.LoadConfigWithPriority(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dictPath, "dict", "", "path to a newline-delimited word list")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config.toml (defaults to the platform config dir)")
	root.PersistentFlags().IntVar(&budget, "budget", -1, "edit-distance budget (defaults to the config value)")
	root.PersistentFlags().BoolVar(&allowIndel, "indels", false, "allow insertions/deletions during fuzzy search")

	root.AddCommand(
		buildSearchCmd(),
		buildCountCmd(),
		buildSubstringCmd(),
		buildPrefixCmd(),
		buildAddCmd(),
		buildRemoveCmd(),
		buildStatsCmd(),
	)

	if err := root.Execute(); err != nil {
		lg.Error(err)
		os.Exit(1)
	}
}

func loadEntries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dict %q: %w", path, err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries, scanner.Err()
}

func effectiveBudget() int {
	if budget >= 0 {
		return budget
	}
	return cfg.Trie.DefaultBudget
}

func loadTrie(mutable bool) (*trie.Trie, error) {
	if dictPath == "" {
		return nil, fmt.Errorf("--dict is required")
	}
	entries, err := loadEntries(dictPath)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d entries from %s", len(entries), dictPath)
	return trie.New(entries, allowIndel, mutable), nil
}

func buildSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find the closest stored entry to query within a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTrie(false)
			if err != nil {
				return err
			}
			entry, dist, err := t.Search(args[0], effectiveBudget())
			if err != nil {
				return err
			}
			if dist < 0 {
				fmt.Println("no match")
				return nil
			}
			fmt.Printf("%s\t%d\n", entry, dist)
			return nil
		},
	}
}

func buildCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <query>",
		Short: "Count entries within a budget of query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTrie(false)
			if err != nil {
				return err
			}
			n, err := t.SearchCount(args[0], effectiveBudget())
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
}

func buildSubstringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "substring <text>",
		Short: "Find a window of text within a budget of a stored entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTrie(false)
			if err != nil {
				return err
			}
			entry, dist, start, end, err := t.SearchSubstring(args[0], effectiveBudget())
			if err != nil {
				return err
			}
			if dist < 0 {
				fmt.Println("no match")
				return nil
			}
			fmt.Printf("%s\t%d\t%d\t%d\n", entry, dist, start, end)
			return nil
		},
	}
}

func buildPrefixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefix <text>",
		Short: "Find the longest stored entry that is a prefix of text at some offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTrie(false)
			if err != nil {
				return err
			}
			ml := minLen
			if ml <= 0 {
				ml = cfg.Trie.DefaultMinMatchLen
			}
			entry, start, length, err := t.LongestPrefixMatch(args[0], ml)
			if err != nil {
				return err
			}
			if length < 0 {
				fmt.Println("no match")
				return nil
			}
			fmt.Printf("%s\t%d\t%d\n", entry, start, length)
			return nil
		},
	}
	cmd.Flags().IntVar(&minLen, "min-len", 0, "minimum match length (defaults to the config value)")
	return cmd
}

func buildAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <entry>",
		Short: "Add an entry to the dictionary file, preserving the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTrie(true)
			if err != nil {
				return err
			}
			if err := t.Add(args[0]); err != nil {
				return err
			}
			return rewriteDict(t)
		},
	}
}

func buildRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <entry>",
		Short: "Remove an entry from the dictionary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTrie(true)
			if err != nil {
				return err
			}
			if err := t.Remove(args[0]); err != nil {
				return err
			}
			return rewriteDict(t)
		},
	}
}

func rewriteDict(t *trie.Trie) error {
	f, err := os.Create(dictPath)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, e := range t.Entries() {
		fmt.Fprintln(w, e)
	}
	return w.Flush()
}

func buildStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print size and configuration of the trie built from --dict",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTrie(false)
			if err != nil {
				return err
			}
			fmt.Printf("entries: %d\nallow_indels: %t\nmutable: %t\n", t.Len(), t.AllowIndels(), t.Mutable())
			return nil
		},
	}
}
