/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"bufio"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"
)

// PlainSource reads an uncompressed .pgn file or URL.
type PlainSource struct {
	path   string
	reader *ByteCountingReader
	lines  *bufio.Scanner
	close  closeFn
	size   bytesize.ByteSize
}

func NewPlainSource(path string) *PlainSource {
	return &PlainSource{path: path}
}

func (s *PlainSource) Open() error {
	reader, size, close, err := openStream(s.path)
	if err != nil {
		return err
	}

	s.reader = &ByteCountingReader{reader: reader}
	s.size = size
	s.close = close
	s.lines = bufio.NewScanner(bufio.NewReader(s.reader))

	return nil
}

func (s *PlainSource) Close() error              { return s.close() }
func (s *PlainSource) Scan() bool                { return s.lines.Scan() }
func (s *PlainSource) Text() string              { return s.lines.Text() }
func (s *PlainSource) Size() bytesize.ByteSize   { return s.size }
func (s *PlainSource) BytesRead() bytesize.ByteSize {
	return s.reader.bytesRead
}

// Bzip2Source reads a bzip2-compressed PGN stream. The decompressor exposes
// input and output offsets, which drive the size estimate.
type Bzip2Source struct {
	path   string
	reader *bzip2.Reader
	lines  *bufio.Scanner
	close  closeFn
	size   bytesize.ByteSize
}

func NewBzip2Source(path string) *Bzip2Source {
	return &Bzip2Source{path: path}
}

func (s *Bzip2Source) Open() error {
	reader, size, close, err := openStream(s.path)
	if err != nil {
		return err
	}

	s.reader, err = bzip2.NewReader(reader, nil)
	if err != nil {
		_ = close()
		return err
	}

	s.size = size
	s.close = close
	s.lines = bufio.NewScanner(bufio.NewReader(s.reader))

	return nil
}

func (s *Bzip2Source) Close() error { return s.close() }
func (s *Bzip2Source) Scan() bool   { return s.lines.Scan() }
func (s *Bzip2Source) Text() string { return s.lines.Text() }

func (s *Bzip2Source) Size() bytesize.ByteSize {
	if s.reader.InputOffset > 0 {
		return s.size * bytesize.ByteSize(s.reader.OutputOffset/s.reader.InputOffset)
	}
	return s.size
}

func (s *Bzip2Source) BytesRead() bytesize.ByteSize {
	return bytesize.ByteSize(s.reader.OutputOffset)
}

// ZstSource reads a zstd-compressed PGN stream, with byte-counting wrappers
// on both sides of the decoder for the compression-ratio estimate.
type ZstSource struct {
	path         string
	inputReader  *ByteCountingReader
	outputReader *ByteCountingReader
	lines        *bufio.Scanner
	close        closeFn
	size         bytesize.ByteSize
}

func NewZstSource(path string) *ZstSource {
	return &ZstSource{path: path}
}

func (s *ZstSource) Open() error {
	reader, size, close, err := openStream(s.path)
	if err != nil {
		return err
	}

	s.inputReader = &ByteCountingReader{reader: reader}
	zstReader, err := zstd.NewReader(s.inputReader)
	if err != nil {
		_ = close()
		return err
	}
	s.outputReader = &ByteCountingReader{reader: zstReader}

	s.size = size
	s.close = close
	s.lines = bufio.NewScanner(bufio.NewReader(s.outputReader))

	return nil
}

func (s *ZstSource) Close() error { return s.close() }
func (s *ZstSource) Scan() bool   { return s.lines.Scan() }
func (s *ZstSource) Text() string { return s.lines.Text() }

func (s *ZstSource) Size() bytesize.ByteSize {
	if s.inputReader.bytesRead > 0 {
		return s.size * (s.outputReader.bytesRead / s.inputReader.bytesRead)
	}
	return s.size
}

func (s *ZstSource) BytesRead() bytesize.ByteSize {
	return s.outputReader.bytesRead
}
