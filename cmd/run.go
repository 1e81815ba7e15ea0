package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/whilelang/interp/ast"
	"github.com/whilelang/interp/concrete"
	"github.com/whilelang/interp/domain"
	"github.com/whilelang/interp/dot"
	"github.com/whilelang/interp/interp"
	"github.com/whilelang/interp/internal/config"
	"github.com/whilelang/interp/parser"
)

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags(), cfgFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.Verbose)
	defer logger.Sync()
	interp.SetLogger(logger)

	if len(domainFlag) > 0 {
		cfg.Domains = domainFlag
	}
	if astPath != "" {
		cfg.ASTPath = astPath
	}
	if cmd.Flags().Changed("modulus") {
		cfg.Modulus = modulus
	}

	source := ""
	if len(args) > 0 {
		source = args[0]
	}
	src, err := readSource(source)
	if err != nil {
		return err
	}

	tree, err := parser.Parse(src)
	if err != nil {
		logger.Error("parse failed", zap.Error(err))
		return err
	}

	if cfg.ASTPath != "" {
		if err := writeDOT(cfg.ASTPath, tree); err != nil {
			return fmt.Errorf("writing AST: %w", err)
		}
	}

	for _, name := range cfg.Domains {
		out, err := runDomain(name, tree, cfg, logger)
		if err != nil {
			logger.Error("interpretation failed", zap.Error(err))
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

func writeDOT(path string, tree ast.Stm) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dot.Write(f, tree)
}

// runDomain interprets tree under the named domain and renders the
// resulting state as "<domain-name> domain: [var -> value, ...]" (the
// concrete run as "concrete: [var -> value, ...]"). Each abstract case
// instantiates the generic engine for one concrete domain value
// type, since Go generics require the type parameter at the call site.
func runDomain(name string, tree ast.Stm, cfg config.Config, logger *zap.Logger) (string, error) {
	switch name {
	case "sign":
		return runAbstract(domain.Sign{}, tree)
	case "interval":
		return runAbstract(domain.NewInterval(-cfg.IntervalBound-1, cfg.IntervalBound), tree)
	case "sinterval":
		return runAbstract(domain.NewSInterval(cfg.IntervalBound), tree)
	case "modulo":
		return runAbstract(domain.NewModulo(cfg.Modulus), tree)
	case "blackhole":
		return runAbstract(domain.BlackHole{}, tree)
	case "concrete":
		return runConcrete(tree, logger)
	default:
		return "", fmt.Errorf("unknown domain %q", name)
	}
}

func runAbstract[T any](dom domain.Domain[T], tree ast.Stm) (string, error) {
	s, err := interp.InterpretFresh(dom, tree)
	if err != nil {
		return "", err
	}
	return dom.Name() + " domain: " + s.Dump(), nil
}

func runConcrete(tree ast.Stm, logger *zap.Logger) (string, error) {
	io := concrete.NewIO(os.Stdin, os.Stdout).WithLogger(logger)
	s, err := concrete.Interpret(tree, concrete.NewState(), io)
	if err != nil {
		return "", err
	}
	return "concrete: " + s.Dump(), nil
}
