package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eeeENVI/ConfigParser"
)

// loadStore reads path into a fresh store, prefixing parse errors with the
// file name.
func loadStore(path string) (*configparser.Store, error) {
	s := configparser.New()
	if err := s.LoadFile(path); err != nil {
		var pe *configparser.ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	return s, nil
}

// parseTyped converts token to a value. An empty kind infers it the way a
// file load does; otherwise the token is read as that kind.
func parseTyped(kind, token string) (configparser.Value, error) {
	switch kind {
	case "":
		return configparser.ParseValue(token)
	case "string":
		return configparser.StringValue(token), nil
	case "int":
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return configparser.Value{}, fmt.Errorf("invalid int value %q: %w", token, err)
		}
		return configparser.IntValue(int32(n)), nil
	case "uint":
		n, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return configparser.Value{}, fmt.Errorf("invalid uint value %q: %w", token, err)
		}
		return configparser.UintValue(uint32(n)), nil
	case "float":
		f, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return configparser.Value{}, fmt.Errorf("invalid float value %q: %w", token, err)
		}
		return configparser.FloatValue(float32(f)), nil
	case "bool":
		switch token {
		case "true", "1":
			return configparser.BoolValue(true), nil
		case "false", "0":
			return configparser.BoolValue(false), nil
		}
		return configparser.Value{}, fmt.Errorf("invalid bool value %q", token)
	}
	return configparser.Value{}, fmt.Errorf("unknown type %q (want string, int, uint, float or bool)", kind)
}

// checkReloadable fails if v would be saved as a token that does not load
// back.
func checkReloadable(v configparser.Value) error {
	token := configparser.FormatValue(v)
	if strings.ContainsAny(token, "\r\n") {
		return fmt.Errorf("value %q would not load back: contains a line break", token)
	}
	if _, err := configparser.ParseValue(token); err != nil {
		return fmt.Errorf("value would not load back: %w", err)
	}
	return nil
}

// --- check ---

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadStore(args[0])
		if err != nil {
			return err
		}
		printSuccess("%s: ok (%d keys)", args[0], s.Len())
		return nil
	},
}

// --- get ---

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print the value of a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, key := args[0], args[1]
		showKind, _ := cmd.Flags().GetBool("kind")

		s, err := loadStore(path)
		if err != nil {
			return err
		}

		v, ok := s.Lookup(key)
		if !ok {
			return &configparser.KeyError{Key: key, Err: configparser.ErrKeyNotFound}
		}

		out := cmd.OutOrStdout()
		if showKind {
			fmt.Fprintln(out, v.Kind())
			return nil
		}
		fmt.Fprintln(out, v)
		return nil
	},
}

func init() {
	getCmd.Flags().Bool("kind", false, "print the value kind instead of the value")
}

// --- set ---

var setCmd = &cobra.Command{
	Use:   "set <file> <key> <value>",
	Short: "Set a key and save the file",
	Long: `Set a key and save the file.

The value is read with the same rules as the file format unless --type is
given. --type uint is the only way to store an unsigned value; the file
keeps only its digits, so it reads back as an int and must fit one.
Values the file cannot read back (an unsigned value above 2147483647,
NaN, Inf, strings with line breaks) are refused.

Examples:
  configparser set game.conf title '"My Game"'
  configparser set game.conf volume 0.75
  configparser set game.conf seed 420 --type uint`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, key, token := args[0], args[1], args[2]
		kind, _ := cmd.Flags().GetString("type")

		v, err := parseTyped(kind, token)
		if err != nil {
			return err
		}
		if err := checkReloadable(v); err != nil {
			return err
		}

		s, err := loadStore(path)
		if err != nil {
			return err
		}

		if old, ok := s.Lookup(key); ok && old.Kind() != v.Kind() {
			printWarning("%s changes kind: %s -> %s", key, old.Kind(), v.Kind())
		}
		if err := s.SetValue(key, v); err != nil {
			return err
		}
		if err := s.SaveFile(path); err != nil {
			return err
		}

		printSuccess("Set %s = %s", key, v)
		return nil
	},
}

func init() {
	setCmd.Flags().String("type", "", "force the value kind: string, int, uint, float or bool")
}

// --- unset ---

var unsetCmd = &cobra.Command{
	Use:   "unset <file> <key>...",
	Short: "Remove keys and save the file",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, keys := args[0], args[1:]

		s, err := loadStore(path)
		if err != nil {
			return err
		}

		removed := 0
		for _, k := range keys {
			if _, ok := s.Lookup(k); !ok {
				printWarning("%s not present", k)
				continue
			}
			s.ClearKeys(k)
			removed++
		}

		if err := s.SaveFile(path); err != nil {
			return err
		}
		printSuccess("Removed %d keys, %d left", removed, s.Len())
		return nil
	},
}

// --- keys ---

var keysCmd = &cobra.Command{
	Use:   "keys <file>",
	Short: "List the keys of a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadStore(args[0])
		if err != nil {
			return err
		}
		printLines(cmd.OutOrStdout(), s.Keys())
		return nil
	},
}

// --- dump ---

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print a configuration file in normalized form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := loadStore(args[0])
		if err != nil {
			return err
		}
		return writeStore(cmd, s, asJSON)
	},
}

func init() {
	dumpCmd.Flags().Bool("json", false, "print as a JSON object")
}

// --- merge ---

var mergeCmd = &cobra.Command{
	Use:   "merge <base> <overlay>",
	Short: "Print base with every key of overlay applied on top",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		base, err := loadStore(args[0])
		if err != nil {
			return err
		}
		overlay, err := loadStore(args[1])
		if err != nil {
			return err
		}

		base.Merge(overlay)
		return writeStore(cmd, base, asJSON)
	},
}

func init() {
	mergeCmd.Flags().Bool("json", false, "print as a JSON object")
}

func writeStore(cmd *cobra.Command, s *configparser.Store, asJSON bool) error {
	out := cmd.OutOrStdout()
	if !asJSON {
		printLines(out, s.Save())
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Map())
}

func init() {
	rootCmd.AddCommand(checkCmd, getCmd, setCmd, unsetCmd, keysCmd, dumpCmd, mergeCmd)
}
