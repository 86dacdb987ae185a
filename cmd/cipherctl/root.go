package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cipher-backend/analysis"
	"cipher-backend/config"
	"cipher-backend/crypto"

	"github.com/spf13/cobra"
)

type options struct {
	configPath  string
	key         string
	keepPadding bool
	keepFiller  bool
	verbose     bool
}

type app struct {
	opts   options
	out    io.Writer
	logger *slog.Logger
	cfg    *config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout}

	root := &cobra.Command{
		Use:           "cipherctl",
		Short:         "Encrypt and decrypt text with the Hill, Playfair and Vigenère ciphers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if a.opts.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			cfg, err := config.Load(a.opts.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "YAML file supplying default keys")
	flags.StringVarP(&a.opts.key, "key", "k", "", "cipher key (Hill: rows separated by ';', entries by ',')")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "log every block and digraph")

	hill := cipherCmd("hill", "Hill cipher with an n×n key matrix", a.hill)
	hill.PersistentFlags().BoolVar(&a.opts.keepPadding, "keep-padding", false, "do not strip trailing X after decryption")

	playfair := cipherCmd("playfair", "Playfair cipher with a 5×5 key square", a.playfair)
	playfair.PersistentFlags().BoolVar(&a.opts.keepFiller, "keep-filler", false, "do not remove filler X after decryption")

	root.AddCommand(
		hill,
		playfair,
		cipherCmd("vigenere", "Vigenère cipher with a repeating key", a.vigenere),
		a.analyzeCmd(),
		a.squareCmd(),
		a.tableCmd(),
	)
	return root
}

// cipherCmd builds "<name> encrypt|decrypt TEXT...".
func cipherCmd(name, short string, run func(decrypt bool, text string) (string, error)) *cobra.Command {
	cmd := &cobra.Command{Use: name, Short: short}
	for _, op := range []string{"encrypt", "decrypt"} {
		decrypt := op == "decrypt"
		cmd.AddCommand(&cobra.Command{
			Use:   op + " TEXT...",
			Short: strings.ToUpper(op[:1]) + op[1:] + " text",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := run(decrypt, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res)
				return nil
			},
		})
	}
	return cmd
}

func (a *app) hill(decrypt bool, text string) (string, error) {
	key := crypto.Matrix(a.cfg.Defaults.HillKey)
	if a.opts.key != "" {
		parsed, err := parseMatrix(a.opts.key)
		if err != nil {
			return "", err
		}
		key = parsed
	}

	opts := []crypto.HillOption{crypto.WithBlockObserver(func(s crypto.BlockStep) {
		a.logger.Debug("hill block", "index", s.Index, "decrypt", s.Decrypt, "in", s.Input, "out", s.Output)
	})}
	if a.opts.keepPadding {
		opts = append(opts, crypto.WithKeepPadding())
	}
	h, err := crypto.NewHill(key, opts...)
	if err != nil {
		return "", fmt.Errorf("hill key %v: %w", key, err)
	}
	a.logger.Debug("hill key", "size", h.Size(), "key", h.Key(), "inverse", h.InverseKey())

	if decrypt {
		return h.Decrypt(text)
	}
	return h.Encrypt(text), nil
}

func (a *app) playfair(decrypt bool, text string) (string, error) {
	key := a.keyOr(a.cfg.Defaults.PlayfairKey)
	opts := []crypto.PlayfairOption{crypto.WithDigraphObserver(func(s crypto.DigraphStep) {
		a.logger.Debug("playfair digraph", "index", s.Index, "decrypt", s.Decrypt, "in", s.Input, "out", s.Output, "rule", s.Rule)
	})}
	if a.opts.keepFiller {
		opts = append(opts, crypto.WithKeepFiller())
	}
	p := crypto.NewPlayfair(key, opts...)

	if decrypt {
		return p.Decrypt(text)
	}
	return p.Encrypt(text), nil
}

func (a *app) vigenere(decrypt bool, text string) (string, error) {
	v, err := crypto.NewVigenere(a.keyOr(a.cfg.Defaults.VigenereKey))
	if err != nil {
		return "", err
	}
	a.logger.Debug("vigenere key stream", "key", v.Key(), "stream", v.KeyStream(len(crypto.Normalize(text))))

	if decrypt {
		return v.Decrypt(text), nil
	}
	return v.Encrypt(text), nil
}

func (a *app) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze TEXT...",
		Short: "Show letter frequencies; with --key also for the Vigenère ciphertext",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "letters: %d  ioc: %.4f\n", len(crypto.Normalize(text)), analysis.IndexOfCoincidence(text))
			writeFrequency(out, analysis.LetterFrequency(text))

			if a.opts.key == "" {
				return nil
			}
			v, err := crypto.NewVigenere(a.opts.key)
			if err != nil {
				return err
			}
			cmp := analysis.Compare(text, v.Encrypt(text))
			fmt.Fprintf(out, "ciphertext: %s  ioc: %.4f\n", v.Encrypt(text), cmp.CipherIOC)
			writeFrequency(out, cmp.Cipher)

			pattern := analysis.KeyPattern(v, cmp.PlainCount)
			fmt.Fprintf(out, "key stream: %s\n", pattern.Stream)
			return nil
		},
	}
}

func (a *app) squareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "square [KEY]",
		Short: "Print the Playfair key square",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := a.keyOr(a.cfg.Defaults.PlayfairKey)
			if len(args) == 1 {
				key = args[0]
			}
			for _, row := range crypto.NewPlayfair(key).Square() {
				letters := make([]string, len(row))
				for i, c := range row {
					letters[i] = string(c)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(letters, " "))
			}
			return nil
		},
	}
}

func (a *app) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the Vigenère tabula recta",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, row := range crypto.TabulaRecta() {
				fmt.Fprintln(cmd.OutOrStdout(), row)
			}
			return nil
		},
	}
}

func (a *app) keyOr(fallback string) string {
	if a.opts.key != "" {
		return a.opts.key
	}
	return fallback
}

func writeFrequency(w io.Writer, counts []analysis.LetterCount) {
	for _, lc := range counts {
		fmt.Fprintf(w, "  %s %3d %5.1f%%\n", lc.Letter, lc.Count, lc.Percent)
	}
}

// parseMatrix reads "3,2;5,7" into [[3 2] [5 7]].
func parseMatrix(s string) (crypto.Matrix, error) {
	rows := strings.Split(s, ";")
	if len(rows) > crypto.MaxHillSize {
		return nil, fmt.Errorf("hill key has %d rows, at most %d allowed: %w", len(rows), crypto.MaxHillSize, crypto.ErrInvalidKey)
	}
	var m crypto.Matrix
	for _, rowText := range rows {
		var row []int
		for _, field := range strings.Split(rowText, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("parse hill key %q: %w", s, err)
			}
			row = append(row, n)
		}
		m = append(m, row)
	}
	return m, nil
}
