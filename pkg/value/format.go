package value

// bytesPerLine is the width of one row of a byte dump.
const bytesPerLine = 16

// FormatInteger renders an integer of the given byte width as
// `<unsigned-decimal> (0x<hex>)`. When the sized top bit is set,
// the sign-extended reading is appended as ` == <signed-decimal>`
// so the value is recognizable whether the original type was
// signed or unsigned.
func FormatInteger(b *Buffer, raw uint64, size int) {
	mask := Mask(size)
	v := raw & mask
	if Negative(raw, size) {
		b.Writef("%d (0x%x == %d)", v, v, int64(v|^mask))
	} else {
		b.Writef("%d (0x%x)", v, v)
	}
}

// FormatFloat renders a floating-point value in compact %g form.
// Equality for floats is exact, so the rendering carries full
// precision rather than a rounded display.
func FormatFloat(b *Buffer, f float64) {
	b.Writef("%g", f)
}

// FormatPointer renders an address in 0x-prefixed hex, or the
// literal NULL sentinel for a zero address. The pointee is never
// read.
func FormatPointer(b *Buffer, p uintptr) {
	if p == 0 {
		b.WriteString("NULL")
		return
	}
	b.Writef("0x%x", p)
}

// FormatBytes renders a hex+ASCII dump, sixteen bytes per line.
// Non-printable bytes show as '.' in the ASCII column. When the
// dump spans several lines, a short final line is right-padded in
// the hex column so the ASCII columns align. Zero-length input
// produces no output. Writing stops a few bytes short of the
// buffer's capacity; callers size buffers generously and accept
// truncation beyond that.
func FormatBytes(b *Buffer, data []byte) {
	lines := (len(data) + bytesPerLine - 1) / bytesPerLine

	for i := 0; i < lines; i++ {
		last := i == lines-1

		for j := 0; j < bytesPerLine; j++ {
			off := i*bytesPerLine + j
			if off >= len(data) || b.Remaining() < 4 {
				break
			}
			b.Writef("%02x ", data[off])
		}

		if i > 0 && last {
			pad := (bytesPerLine - (len(data) - i*bytesPerLine)) * 3
			for j := 0; j < pad && b.Remaining() > 1; j++ {
				b.PutByte(' ')
			}
		}
		b.PutByte(' ')

		for j := 0; j < bytesPerLine; j++ {
			off := i*bytesPerLine + j
			if off >= len(data) || b.Remaining() < 2 {
				break
			}
			c := data[off]
			if c < 0x20 || c >= 0x7f {
				c = '.'
			}
			b.PutByte(c)
		}

		if !last {
			b.PutByte('\n')
		}
	}
}

// EscapeString copies s applying C-style escaping: \n, \t, \r,
// \" and \\ keep their mnemonic forms, any other byte below 0x20
// or at 0x7F and above becomes \xHH. Control characters therefore
// show up in diagnostics instead of corrupting terminal output.
func EscapeString(b *Buffer, s string) {
	for i := 0; i < len(s); i++ {
		// Room for the widest escape plus a margin.
		if b.Remaining() < 5 {
			b.truncated = true
			return
		}
		c := s[i]
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if c < 0x20 || c >= 0x7f {
				b.Writef(`\x%02x`, c)
			} else {
				b.PutByte(c)
			}
		}
	}
}
