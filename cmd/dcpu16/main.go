package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tismith/dcpu16/pkg/cpu"
	"github.com/tismith/dcpu16/pkg/dasm"
	"github.com/tismith/dcpu16/pkg/debug"
	"github.com/tismith/dcpu16/pkg/prog"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dcpu16",
		Short: "DCPU-16 emulator and disassembler",
	}

	// run command
	var runFile string
	var interval int
	var verbose, quiet int

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a program binary",
		Long: `Execute a DCPU-16 program binary (raw big-endian words, loaded at
address 0). SIGUSR1 dumps the registers and toggles a halt; SIGUSR2
dumps all of memory. Both take effect at the next instruction boundary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := prog.Load(runFile)
			if err != nil {
				return err
			}

			flags := &cpu.Flags{}
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGUSR1, syscall.SIGUSR2)
			go func() {
				for sig := range sigs {
					switch sig {
					case syscall.SIGUSR1:
						flags.DumpRegisters.Store(true)
						flags.Halt.Store(!flags.Halt.Load())
					case syscall.SIGUSR2:
						flags.DumpMemory.Store(true)
					}
				}
			}()

			return m.Run(cpu.RunConfig{
				Interval:  time.Duration(interval) * time.Second,
				Verbosity: 1 + verbose - quiet,
				Flags:     flags,
			})
		},
	}
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "program binary to load at address 0")
	runCmd.MarkFlagRequired("file")
	runCmd.Flags().IntVarP(&interval, "interval", "i", 1, "seconds of sleep between instructions")
	runCmd.Flags().CountVarP(&verbose, "verbose", "v", "increase verbosity")
	runCmd.Flags().CountVarP(&quiet, "quiet", "q", "decrease verbosity")

	// disasm command
	var disasmFile string

	disasmCmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble a program binary to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(disasmFile)
			if err != nil {
				return err
			}
			return dasm.Disassemble(image, os.Stdout)
		},
	}
	disasmCmd.Flags().StringVarP(&disasmFile, "file", "f", "", "program binary to disassemble")
	disasmCmd.MarkFlagRequired("file")

	// debug command
	var debugFile string

	debugCmd := &cobra.Command{
		Use:   "debug",
		Short: "Step through a program interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := prog.Load(debugFile)
			if err != nil {
				return err
			}
			return debug.Run(m)
		},
	}
	debugCmd.Flags().StringVarP(&debugFile, "file", "f", "", "program binary to load at address 0")
	debugCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(runCmd, disasmCmd, debugCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
