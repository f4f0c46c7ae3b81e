//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/moffa90/go-gbxcart/cartridge"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run test_rom_parse.go <image.gb>")
		os.Exit(1)
	}

	romPath := os.Args[1]
	fmt.Printf("Parsing ROM image: %s\n\n", romPath)

	h, err := cartridge.ParseFile(romPath)
	if err != nil {
		log.Fatalf("Failed to parse header: %v", err)
	}

	fmt.Println("✅ Header parsed successfully!")
	fmt.Println()
	fmt.Printf("Header Information:\n")
	fmt.Printf("  Title:           %q\n", h.Title)
	fmt.Printf("  Type:            %s\n", h.Type)
	fmt.Printf("  SGB:             %t\n", h.SGBEnhanced)
	fmt.Printf("  Mapper:          0x%02X (%s)\n", byte(h.Mapper), h.Mapper)
	fmt.Printf("  ROM:             %s (code 0x%02X)\n", h.ROMText(), h.ROMSizeCode)
	fmt.Printf("  RAM:             %s (code 0x%02X)\n", h.RAMText(), h.RAMSizeCode)
	fmt.Printf("  Destination:     0x%02X\n", h.Destination)
	fmt.Printf("  Version:         0x%02X\n", h.ROMVersion)
	fmt.Printf("  Header checksum: 0x%02X (%s)\n", h.HeaderChecksum, h.ChecksumText())
	fmt.Printf("  Logo:            %t\n", h.LogoValid)
	fmt.Println()

	image, err := os.ReadFile(romPath)
	if err != nil {
		log.Fatalf("Failed to read image: %v", err)
	}

	fmt.Printf("Image:\n")
	fmt.Printf("  Size:            %d bytes (%.2f KB)\n", len(image), float64(len(image))/1024.0)
	if want := h.ROMSize(); len(image) != want {
		fmt.Printf("  ⚠️  header declares %d bytes\n", want)
	}
	fmt.Printf("  Global checksum: stored 0x%04X, computed 0x%04X (%t)\n",
		h.GlobalChecksum, cartridge.GlobalChecksum(image), cartridge.VerifyGlobalChecksum(image))
}
