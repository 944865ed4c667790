package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmgcore/sm83/internal/bus"
	"github.com/dmgcore/sm83/internal/cpu"
	"github.com/dmgcore/sm83/internal/interrupts"
	"github.com/dmgcore/sm83/internal/timer"
	"github.com/dmgcore/sm83/pkg/digest"
	"github.com/dmgcore/sm83/pkg/log"
	"github.com/dmgcore/sm83/pkg/romfile"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sm83run",
		Short: "SM83 core runner: execute a program image headlessly",
	}
	rootCmd.AddCommand(runCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCommand() *cobra.Command {
	var (
		loadAddr   uint16
		steps      uint64
		trace      bool
		until      string
		skipBoot   bool
		showDigest bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Run a program image until it stops or a step budget runs out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New()
			if verbose {
				logger = log.NewVerbose()
			}

			program, err := romfile.Load(args[0])
			if err != nil {
				return err
			}
			logger.Infof("loaded %s (%d bytes)", args[0], len(program))

			irq := interrupts.NewService()
			tmr := timer.NewController(irq)
			b := bus.New(logger)
			b.LoadProgram(loadAddr, program)
			b.MapInterrupts(irq)
			b.MapTimer(tmr)

			var serial strings.Builder
			b.MapSerial(irq, func(value uint8) {
				serial.WriteByte(value)
				fmt.Printf("%c", value)
			})

			core := cpu.New(b, irq, tmr)
			core.Reset(skipBoot)

			d := digest.New()
			var (
				executed uint64
				cycles   uint64
				stopped  string
			)
			func() {
				defer func() {
					if r := recover(); r != nil {
						if ill, ok := r.(cpu.IllegalOpcodeError); ok {
							stopped = ill.Error()
							return
						}
						panic(r)
					}
				}()
				for executed < steps {
					if trace && !core.Halted() && !core.Stopped() {
						logger.Debugf("0x%04X  %s", core.PC, disassemble(core, b))
					}
					stepCycles := core.Step()
					cycles += uint64(stepCycles)
					executed++
					d.Add(core.Snapshot(), stepCycles)

					if core.Stopped() {
						stopped = "STOP"
						return
					}
					if until != "" && strings.Contains(serial.String(), until) {
						stopped = fmt.Sprintf("serial matched %q", until)
						return
					}
				}
				stopped = "step budget exhausted"
			}()

			logger.Infof("stopped after %d steps (%d machine cycles): %s", executed, cycles, stopped)
			if showDigest {
				fmt.Printf("digest: %016x\n", d.Sum64())
			}
			return nil
		},
	}
	cmd.Flags().Uint16Var(&loadAddr, "load-addr", 0x0000, "Address to load the image at")
	cmd.Flags().Uint64Var(&steps, "steps", 10_000_000, "Maximum number of instructions to execute")
	cmd.Flags().BoolVar(&trace, "trace", false, "Trace each instruction before executing it")
	cmd.Flags().StringVar(&until, "until", "", "Stop once the serial output contains this substring")
	cmd.Flags().BoolVar(&skipBoot, "skip-boot", true, "Start from the documented post-boot register state")
	cmd.Flags().BoolVar(&showDigest, "digest", false, "Print the execution digest on exit")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	return cmd
}

// disassemble names the instruction at the current PC without
// disturbing any state; the bus read is side-effect free for program
// memory.
func disassemble(core *cpu.CPU, b *bus.Bus) string {
	opcode := b.Read(core.PC)
	if opcode == 0xCB {
		return cpu.InstructionSetCB[b.Read(core.PC+1)].Name()
	}
	return cpu.InstructionSet[opcode].Name()
}
