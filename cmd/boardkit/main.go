package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/boardkit/internal/board"
	"github.com/san-kum/boardkit/internal/demo"
	"github.com/san-kum/boardkit/internal/tui"
)

var (
	motors  []int
	servos  []int
	adcs    []int
	leds    []int
	verbose bool
	logFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "boardkit",
		Short: "channel abstraction console for motor/servo/adc/led boards",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The console owns the terminal, so logs go to a file or nowhere.
			log, closeLog, err := fileLogger()
			if err != nil {
				return err
			}
			defer closeLog()
			b := newDemoBoard(log)
			return tui.Run(b)
		},
	}

	rootCmd.PersistentFlags().IntSliceVar(&motors, "motors", []int{0, 1}, "motor channel indices")
	rootCmd.PersistentFlags().IntSliceVar(&servos, "servos", []int{0, 1, 5, 6}, "servo channel indices")
	rootCmd.PersistentFlags().IntSliceVar(&adcs, "adcs", []int{0, 1, 2}, "adc channel indices")
	rootCmd.PersistentFlags().IntSliceVar(&leds, "leds", []int{0, 1}, "led channel indices")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&logFile, "log", "", "write logs to this file while the console runs")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "exercise every channel kind against the built-in backend",
		RunE:  runDemo,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the default configuration document",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := newDemoBoard(discardLogger())
			doc, err := b.ConfigYAML()
			if err != nil {
				return err
			}
			fmt.Print(doc)
			return nil
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check [config.yaml]",
		Short: "apply a configuration document and print the effective result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			b := newDemoBoard(stderrLogger())
			if err := b.ApplyYAML(data); err != nil {
				return err
			}
			doc, err := b.ConfigYAML()
			if err != nil {
				return err
			}
			fmt.Print(doc)
			return nil
		},
	}

	rootCmd.AddCommand(demoCmd, configCmd, checkCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newDemoBoard(log *slog.Logger) *board.Board {
	backend := demo.New(log)
	return board.New(backend, board.Options{
		Motors: motors,
		Servos: servos,
		ADCs:   adcs,
		LEDs:   leds,
		Logger: log,
	})
}

func runDemo(cmd *cobra.Command, args []string) error {
	log := stderrLogger()
	b := newDemoBoard(log)

	if len(b.Motors()) > 0 {
		m, err := b.Motor(motors[0])
		if err != nil {
			return err
		}
		if err := m.Set(1.0); err != nil {
			return err
		}
		if err := m.SetInvert(true); err != nil {
			return err
		}
	}

	if len(b.Servos()) > 0 {
		s, err := b.Servo(servos[0])
		if err != nil {
			return err
		}
		if err := s.SetPulseRange(700, 1000); err != nil {
			return err
		}
		if err := s.Set(1.0); err != nil {
			return err
		}
	}

	for _, index := range b.ADCs() {
		a, err := b.ADC(index)
		if err != nil {
			return err
		}
		v, err := a.Read(2)
		if err != nil {
			return err
		}
		fmt.Printf("adc %d: %.2fv\n", index, v)
	}

	if len(b.LEDs()) > 0 {
		l, err := b.LED(leds[0])
		if err != nil {
			return err
		}
		if err := l.SetNamed("pink"); err != nil {
			return err
		}
	}

	doc, err := b.ConfigYAML()
	if err != nil {
		return err
	}
	fmt.Println("config:")
	fmt.Print(doc)

	return b.Stop()
}

func stderrLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fileLogger returns the console-mode logger and a close func. Without
// --log the logs are discarded so they cannot corrupt the display.
func fileLogger() (*slog.Logger, func(), error) {
	if logFile == "" {
		return discardLogger(), func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel()})),
		func() { f.Close() }, nil
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
