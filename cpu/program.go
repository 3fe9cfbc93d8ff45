package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Line is a line of program text, and the bytes it places in memory.
type Line struct {
	LineNo  int
	Address int
	Words   []string
	Bytes   []uint8
}

// Program is a loaded or assembled memory image.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug locates the line that placed the byte at addr.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, line := range prog.Lines {
		if addr >= line.Address && addr < line.Address+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: addr - line.Address,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes from address 0 to the end of the image.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		size = max(size, line.Address+len(line.Bytes))
	}

	return
}

// Binary returns the memory image, starting at address 0.
func (prog *Program) Binary() (bin []uint8) {
	bin = make([]uint8, prog.Size())
	for addr, value := range prog.Bytes() {
		bin[addr] = value
	}

	return
}

// Bytes iterates over every placed byte and its address.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(addr int, value uint8) bool) {
		for _, line := range prog.Lines {
			for n, value := range line.Bytes {
				if !yield(line.Address+n, value) {
					return
				}
			}
		}
	}
}

// WriteImage writes the program in the .ls8 text format, annotating
// each line's first byte with its source words.
func (prog *Program) WriteImage(w io.Writer) (err error) {
	comments := make(map[int]string, len(prog.Lines))
	for _, line := range prog.Lines {
		if len(line.Bytes) != 0 && len(line.Words) != 0 {
			comments[line.Address] = strings.Join(line.Words, " ")
		}
	}

	out := bufio.NewWriter(w)
	for addr, value := range prog.Binary() {
		comment, ok := comments[addr]
		if ok {
			_, err = fmt.Fprintf(out, "%08b # %v\n", value, comment)
		} else {
			_, err = fmt.Fprintf(out, "%08b\n", value)
		}
		if err != nil {
			return
		}
	}

	err = out.Flush()
	return
}

// ReadImage parses the .ls8 text format: one 8-digit binary literal per
// line, '#' starting a comment, blank lines ignored. Bytes are placed
// sequentially from address 0.
func ReadImage(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	var addr int

	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		var value uint8
		var words []string
		var ok bool
		value, words, ok, err = parseImageLine(text)
		if err == nil && ok && addr >= MEMORY_SIZE {
			err = ErrImageSize
		}
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
			return nil, err
		}
		if !ok {
			continue
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: addr,
			Words:   words,
			Bytes:   []uint8{value},
		})
		addr++
	}

	err = scanner.Err()
	if err != nil {
		return nil, err
	}

	return
}

// parseImageLine parses one line of an .ls8 image. ok is false for blank
// and comment-only lines.
func parseImageLine(text string) (value uint8, words []string, ok bool, err error) {
	literal, comment, _ := strings.Cut(text, "#")
	literal = strings.TrimSpace(literal)
	if len(literal) == 0 {
		return
	}

	if len(literal) != 8 {
		err = ErrImageSyntax
		return
	}

	v64, err := strconv.ParseUint(literal, 2, 8)
	if err != nil {
		err = ErrImageSyntax
		return
	}

	value = uint8(v64)
	if len(strings.TrimSpace(comment)) != 0 {
		words = strings.Fields(comment)
	}
	ok = true
	return
}
