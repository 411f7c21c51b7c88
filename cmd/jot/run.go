package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jot"
	"github.com/signadot/jot/encode"
	"github.com/signadot/jot/ir"
	"github.com/signadot/jot/parse"

	"github.com/scott-cotton/cli"
)

func fmtUsageErr(sent error, msg string, args ...any) error {
	return fmt.Errorf("%w: "+msg, append([]any{sent}, args...)...)
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}

func orStdin(files []string) []string {
	if len(files) == 0 {
		return []string{"-"}
	}
	return files
}

// forDocs parses each input file and feeds the tree to f, writing the
// result back out when f returns one.
func forDocs(cfg *MainConfig, cc *cli.Context, files []string, f func(*ir.Node) (*ir.Node, error)) error {
	for _, file := range orStdin(files) {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		node, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
		res, err := f(node)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if res == nil {
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := io.WriteString(cc.Out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmtUsageErr(cli.ErrUsage, "get requires a path")
	}
	path := args[0]
	return forDocs(cfg.MainConfig, cc, args[1:], func(node *ir.Node) (*ir.Node, error) {
		return node.GetPath(path)
	})
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmtUsageErr(cli.ErrUsage, "set requires a path and a value")
	}
	path := args[0]
	var val *ir.Node
	if cfg.String {
		val = ir.FromString(args[1])
	} else {
		val, err = parse.Parse([]byte(args[1]))
		if err != nil {
			return fmt.Errorf("error parsing value: %w", err)
		}
	}
	return forDocs(cfg.MainConfig, cc, args[2:], func(node *ir.Node) (*ir.Node, error) {
		return node.SetPath(path, val.Clone())
	})
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmtUsageErr(cli.ErrUsage, "del requires a path")
	}
	path := args[0]
	return forDocs(cfg.MainConfig, cc, args[1:], func(node *ir.Node) (*ir.Node, error) {
		return node.DeletePath(path)
	})
}

func minify(cfg *MinConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Min.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range orStdin(args) {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		var res []byte
		if cfg.Undo {
			res, err = jot.Unminify(d)
		} else {
			res, err = jot.Minify(d)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		res = append(res, '\n')
		if _, err := cc.Out.Write(res); err != nil {
			return err
		}
	}
	return nil
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forDocs(cfg.MainConfig, cc, args, func(node *ir.Node) (*ir.Node, error) {
		return node, nil
	})
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmtUsageErr(cli.ErrUsage, "diff requires two documents")
	}
	nodes := make([]*ir.Node, 2)
	for i, file := range args {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		nodes[i], err = parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
	}
	if cfg.Reverse {
		nodes[0], nodes[1] = nodes[1], nodes[0]
	}
	_, err = io.WriteString(cc.Out, jot.DiffText(nodes[0], nodes[1]))
	return err
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmtUsageErr(cli.ErrUsage, "patch requires a patch file")
	}
	p, err := readInput(args[0])
	if err != nil {
		return err
	}
	return forDocs(cfg.MainConfig, cc, args[1:], func(node *ir.Node) (*ir.Node, error) {
		if cfg.Merge {
			return jot.MergePatch(node, p)
		}
		return jot.Patch(node, p)
	})
}
