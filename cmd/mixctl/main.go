// SPDX-License-Identifier: EPL-2.0

// mixctl is a small administrative tool for inspecting and driving a
// card's mixer routing.
//
// Usage:
//
//	mixctl [-card N] [-config FILE] list
//	mixctl [-card N] get <control>
//	mixctl [-card N] set <control> <value>
//	mixctl [-card N] senum <control> <label>
//	mixctl [-card N] [-config FILE] paths
//	mixctl [-card N] [-config FILE] apply <path> [<path>...]
//	mixctl [-card N] play <file.{wav|aiff|mp3|ogg}>
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/snd-tools/audioroute"
	"github.com/snd-tools/audioroute/alsa"
	"github.com/snd-tools/audioroute/stream"
)

func main() {
	card := flag.Uint("card", 0, "sound card number")
	config := flag.String("config", "", "mixer description file (default: discover per card)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "list":
		err = listControls(*card)
	case "get":
		err = withArgs(args, 2, func() error { return getControl(*card, args[1]) })
	case "set":
		err = withArgs(args, 3, func() error { return setControl(*card, args[1], args[2]) })
	case "senum":
		err = withArgs(args, 3, func() error {
			return audioroute.SetControlEnum(*card, args[1], args[2])
		})
	case "paths":
		err = listPaths(*card, *config)
	case "apply":
		err = withArgs(args, 2, func() error { return applyPaths(*card, *config, args[1:]) })
	case "play":
		err = withArgs(args, 2, func() error { return stream.PlayFile(*card, args[1]) })
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "mixctl:", err)
		os.Exit(1)
	}
}

func withArgs(args []string, n int, f func() error) error {
	if len(args) < n {
		return fmt.Errorf("%s: missing argument", args[0])
	}
	return f()
}

func listControls(card uint) error {
	m, err := alsa.OpenMixer(card)
	if err != nil {
		return err
	}
	defer m.Close()

	fmt.Printf("card %d: %s, %d controls\n", card, m.CardName(), m.NumCtls())
	for i := 0; i < m.NumCtls(); i++ {
		c := m.Ctl(i)
		fmt.Printf("%-8s %-2d %s\n", c.Type(), c.NumValues(), c.Name())
	}
	return nil
}

func getControl(card uint, name string) error {
	m, err := alsa.OpenMixer(card)
	if err != nil {
		return err
	}
	defer m.Close()

	c, ok := m.CtlByName(name)
	if !ok {
		return fmt.Errorf("no control named %q", name)
	}
	for i := 0; i < c.NumValues(); i++ {
		v, err := c.Value(i)
		if err != nil {
			return err
		}
		if c.Type() == alsa.CtlTypeEnum {
			label, err := c.EnumName(v)
			if err != nil {
				return err
			}
			fmt.Printf("%s[%d]: %s\n", name, i, label)
			continue
		}
		fmt.Printf("%s[%d]: %d\n", name, i, v)
	}
	return nil
}

func setControl(card uint, name, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("value %q is not numeric (use senum for labels)", value)
	}
	failed, err := audioroute.SetControlNumeric(card, name, v)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d slot(s) rejected the value", failed)
	}
	return nil
}

func openSession(card uint, config string) (*audioroute.Session, error) {
	if config == "" {
		return audioroute.OpenSession(card)
	}
	return audioroute.OpenSessionConfig(card, config)
}

func listPaths(card uint, config string) error {
	ses, err := openSession(card, config)
	if err != nil {
		return err
	}
	defer ses.Close()

	for _, name := range ses.Paths() {
		fmt.Println(name)
	}
	return nil
}

func applyPaths(card uint, config string, names []string) error {
	ses, err := openSession(card, config)
	if err != nil {
		return err
	}
	defer ses.Close()

	for _, name := range names {
		if err := ses.ApplyPath(name); err != nil {
			return err
		}
	}
	if failed := ses.Commit(); failed > 0 {
		return fmt.Errorf("%d control(s) failed to commit", failed)
	}
	return nil
}
