// Mkfont converts a font into a Go source file declaring a bitmap font
// for the views font package.
//
// Usage:
//
//	mkfont [-ttf file] [-pt size] [-dpi dpi] [-first c] [-last c] [-pkg name] [-var name] [-o file]
//
// Without -ttf, the 7x13 face from golang.org/x/image/font/basicfont
// is converted. Characters -first through -last are rasterized; codes
// above 127 are taken from ISO 8859-1.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	vfont "github.com/aktlab/views/draw/font"
)

var (
	ttf     = flag.String("ttf", "", "TrueType or OpenType `file` to convert")
	pt      = flag.Float64("pt", 10, "point `size` for -ttf")
	dpi     = flag.Float64("dpi", 72, "resolution for -ttf")
	first   = flag.Int("first", ' ', "first character `code`")
	last    = flag.Int("last", '~', "last character `code`")
	pkgName = flag.String("pkg", "fonts", "package `name` of the output")
	varName = flag.String("var", "Font", "variable `name` of the output")
	out     = flag.String("o", "", "output `file` (default standard output)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mkfont [flags]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("mkfont: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 || *first < 0 || *last > 255 || *first > *last {
		usage()
	}

	face, err := openFace()
	if err != nil {
		log.Fatal(err)
	}
	f, err := vfont.FromFace(face, byte(*first), byte(*last), nil)
	if err != nil {
		log.Fatal(err)
	}
	src, err := generate(f, *pkgName, *varName)
	if err != nil {
		log.Fatal(err)
	}
	if *out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*out, src, 0666); err != nil {
		log.Fatal(err)
	}
}

func openFace() (font.Face, error) {
	if *ttf == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(*ttf)
	if err != nil {
		return nil, err
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", *ttf, err)
	}
	return opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    *pt,
		DPI:     *dpi,
		Hinting: font.HintingFull,
	})
}

// generate returns formatted Go source declaring f as variable name.
func generate(f *vfont.MikroFont, pkg, name string) ([]byte, error) {
	var b bytes.Buffer
	lo, hi := f.Range()
	sz := f.Size()
	fmt.Fprintf(&b, "// Code generated by mkfont; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import (\n\t\"github.com/aktlab/views/draw\"\n\t\"github.com/aktlab/views/draw/font\"\n)\n\n")
	fmt.Fprintf(&b, "// %s is a %dx%d font for characters %#x through %#x.\n", name, sz.W, sz.H, lo, hi)
	fmt.Fprintf(&b, "var %s = font.MustMikro(%sData, draw.Sz(%d, %d), %d, %#x, %#x)\n\n", name, name, sz.W, sz.H, f.Offset(), lo, hi)
	fmt.Fprintf(&b, "var %sData = []byte{\n", name)
	data := f.Data()
	for i := 0; i+f.Stride() <= len(data); i += f.Stride() {
		rec := data[i : i+f.Stride()]
		for j, v := range rec {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "0x%02x,", v)
		}
		fmt.Fprintf(&b, " // %#x\n", int(lo)+i/f.Stride())
	}
	fmt.Fprintf(&b, "}\n")
	return format.Source(b.Bytes())
}
