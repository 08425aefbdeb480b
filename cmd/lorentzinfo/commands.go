package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-lorentz/batch"
	"github.com/cwbudde/algo-lorentz/compute/lorentz"
	"github.com/cwbudde/algo-lorentz/compute/registry"
	"github.com/cwbudde/algo-lorentz/coords"
	"github.com/cwbudde/algo-lorentz/vector"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func fileFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "file",
		Usage: "path to a YAML file listing the input vectors",
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func opsCommand() cli.Command {
	return cli.Command{
		Name:  "ops",
		Usage: "list registered kernels per operation",
		Action: func(c *cli.Context) error {
			if missing := lorentz.Missing(); len(missing) > 0 {
				return errors.Errorf("operations without kernels: %s", strings.Join(missing, ", "))
			}
			return printOps(c.App.Writer, registry.Global.ListEntries())
		},
	}
}

func printOps(w io.Writer, entries []registry.OpEntry) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "OP\tVARIANT\tPRIORITY\tSIGNATURE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Op, e.Name, e.Priority, e.Signature)
	}
	return errors.WithStack(tw.Flush())
}

func describeCommand() cli.Command {
	return cli.Command{
		Name:  "describe",
		Usage: "print the kinematics of every input vector",
		Flags: []cli.Flag{fileFlag()},
		Action: func(c *cli.Context) error {
			vs, err := loadVectors(c.String("file"))
			if err != nil {
				return err
			}
			return describe(c.App.Writer, vs)
		},
	}
}

func describe(w io.Writer, vs []namedVector) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tSYSTEM\tT\tTAU\tBETA\tGAMMA\tET\tMT\tRAPIDITY\tPT\tETA\tPHI")
	row := func(name string, v vector.Lorentz) {
		fmt.Fprintf(tw, "%s\t%s\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
			name, v.System(), v.T(), v.Tau(), v.Beta(), v.Gamma(), v.Et(), v.Mt(),
			v.Rapidity(), v.Pt(), v.Eta(), v.Phi())
	}

	plain := make([]vector.Lorentz, len(vs))
	for i, nv := range vs {
		row(nv.name, nv.v)
		plain[i] = nv.v
	}
	if len(vs) > 1 {
		row("total", batch.FromVectors(plain).Sum())
	}
	return errors.WithStack(tw.Flush())
}

func pairCommand() cli.Command {
	return cli.Command{
		Name:  "pair",
		Usage: "print pair observables of two input vectors",
		Flags: []cli.Flag{
			fileFlag(),
			cli.IntFlag{Name: "i", Value: 0, Usage: "index of the first vector"},
			cli.IntFlag{Name: "j", Value: 1, Usage: "index of the second vector"},
		},
		Action: func(c *cli.Context) error {
			vs, err := loadVectors(c.String("file"))
			if err != nil {
				return err
			}
			return pair(c.App.Writer, vs, c.Int("i"), c.Int("j"))
		},
	}
}

func pair(w io.Writer, vs []namedVector, i, j int) error {
	for _, k := range []int{i, j} {
		if k < 0 || k >= len(vs) {
			return errors.Errorf("index %d out of range [0, %d)", k, len(vs))
		}
	}
	a, b := vs[i].v, vs[j].v
	sum := a.Add(b)

	tw := newTable(w)
	fmt.Fprintf(tw, "pair\t%s + %s\n", vs[i].name, vs[j].name)
	fmt.Fprintf(tw, "mass\t%.6g\n", sum.Mass())
	fmt.Fprintf(tw, "dot\t%.6g\n", a.Dot(b))
	fmt.Fprintf(tw, "deltaPhi\t%.6g\n", a.DeltaPhi(b))
	fmt.Fprintf(tw, "deltaEta\t%.6g\n", a.DeltaEta(b))
	fmt.Fprintf(tw, "deltaR\t%.6g\n", a.DeltaR(b))
	return errors.WithStack(tw.Flush())
}

func boostCommand() cli.Command {
	return cli.Command{
		Name:  "boost",
		Usage: "boost every input vector by a velocity",
		Flags: []cli.Flag{
			fileFlag(),
			cli.StringFlag{Name: "beta", Usage: "velocity as bx,by,bz in units of c"},
			cli.StringFlag{Name: "to", Usage: "coordinate system of the output (default: keep each input's)"},
		},
		Action: func(c *cli.Context) error {
			vs, err := loadVectors(c.String("file"))
			if err != nil {
				return err
			}
			beta, err := parseBeta(c.String("beta"))
			if err != nil {
				return err
			}
			var to *coords.System4
			if name := c.String("to"); name != "" {
				sys, err := coords.ParseSystem4(name)
				if err != nil {
					return err
				}
				to = &sys
			}
			return boost(c.App.Writer, vs, beta, to)
		},
	}
}

func parseBeta(s string) (vector.Spatial, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vector.Spatial{}, errors.Errorf("beta %q: want bx,by,bz", s)
	}
	var b [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vector.Spatial{}, errors.Wrapf(err, "beta %q", s)
		}
		b[i] = v
	}
	return vector.NewBeta3(b[0], b[1], b[2]), nil
}

func boost(w io.Writer, vs []namedVector, beta vector.Spatial, to *coords.System4) error {
	log.WithField("beta", beta).Debug("boosting input vectors")

	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tVECTOR\tTAU")
	for _, nv := range vs {
		out, err := nv.v.BoostBeta3(beta)
		if err != nil {
			return errors.Wrapf(err, "vector %s", nv.name)
		}
		if to != nil {
			if out, err = out.To(*to); err != nil {
				return err
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%.6g\n", nv.name, out, out.Tau())
	}
	return errors.WithStack(tw.Flush())
}
