package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/spf13/cobra"
)

var disasmLoadAddress = chip8.DefaultLoadAddress

// disasmCmd prints the instructions of a rom
var disasmCmd = &cobra.Command{
	Use:   "disasm `path/to/rom`",
	Short: "disassemble a chip-8 rom",
	Long:  "Prints every 2 byte word of the rom as address, opcode and mnemonic. Words that are no instruction are printed as data.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDisasm,
}

func init() {
	disasmCmd.Flags().Uint16Var(&disasmLoadAddress, "load-address", disasmLoadAddress, "address the rom is loaded at")
}

func runDisasm(cmd *cobra.Command, args []string) error {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}
	return disassemble(cmd.OutOrStdout(), rom, disasmLoadAddress)
}

func disassemble(w io.Writer, rom []byte, address uint16) error {
	for i := 0; i < len(rom); i += 2 {
		addr := address + uint16(i)
		if i+1 == len(rom) {
			if _, err := fmt.Fprintf(w, "%03X  %02X    DB 0x%02X\n", addr, rom[i], rom[i]); err != nil {
				return err
			}
			break
		}

		word := uint16(rom[i])<<8 | uint16(rom[i+1])
		text := fmt.Sprintf("DW 0x%04X", word)
		if ins, err := chip8.Decode(addr, word); err == nil {
			text = ins.String()
		}
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", addr, word, text); err != nil {
			return err
		}
	}
	return nil
}
