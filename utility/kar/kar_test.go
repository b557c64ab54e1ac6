// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar_test

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"golang.org/x/exp/mmap"

	"github.com/devblok/glbind/utility/kar"
)

var (
	testString1 = "idunvovkjnreovmegihjbrqlkmfrjnb"
	testString2 = "idunvovkjnreovmsdvwrvnervnreegihjbrqlkmfrjnb"
)

func build(c *qt.C, entries ...string) []byte {
	builder, err := kar.NewBuilder(kar.Header{
		Author:      "devblok",
		DateCreated: time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC).Unix(),
		Version:     1,
	})
	c.Assert(err, qt.IsNil)
	defer builder.Close()

	for i := 0; i+1 < len(entries); i += 2 {
		c.Assert(builder.Add(entries[i], strings.NewReader(entries[i+1])), qt.IsNil)
	}

	var buf bytes.Buffer
	written, err := builder.WriteTo(&buf)
	c.Assert(err, qt.IsNil)
	c.Assert(written, qt.Equals, int64(buf.Len()))
	return buf.Bytes()
}

func TestCreateAndRead(t *testing.T) {
	c := qt.New(t)
	data := build(c, "test", testString1, "test2", testString2)

	ar, err := kar.Open(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)
	c.Assert(ar.Names(), qt.DeepEquals, []string{"test", "test2"})
	c.Assert(ar.Header().Author, qt.Equals, "devblok")
	c.Assert(ar.Header().Version, qt.Equals, int64(1))

	f, err := ar.Open("test2")
	c.Assert(err, qt.IsNil)
	c.Assert(f.Size(), qt.Equals, int64(len(testString2)))

	result, err := ioutil.ReadAll(f)
	c.Assert(err, qt.IsNil)
	c.Assert(string(result), qt.Equals, testString2)
}

func TestCreateAndReadAll(t *testing.T) {
	c := qt.New(t)
	long := strings.Repeat("ActiveTexture 1\nBindTexture 2d 7\n", 4096)
	data := build(c, "test", testString1, "empty", "", "long", long)

	ar, err := kar.Open(bytes.NewReader(data))
	c.Assert(err, qt.IsNil)

	for name, want := range map[string]string{"test": testString1, "empty": "", "long": long} {
		got, err := ar.ReadAll(name)
		c.Assert(err, qt.IsNil, qt.Commentf("%s", name))
		c.Assert(string(got), qt.Equals, want, qt.Commentf("%s", name))
	}

	_, err = ar.ReadAll("missing")
	c.Assert(err, qt.Equals, kar.ErrNotFound)
}

func TestOpenmmap(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "trace.kar")
	err := ioutil.WriteFile(path, build(c, "test/test1.txt", "this is a test", "test/test2.txt", "this is another test"), 0644)
	c.Assert(err, qt.IsNil)

	r, err := mmap.Open(path)
	c.Assert(err, qt.IsNil)
	defer r.Close()

	ar, err := kar.Open(r)
	c.Assert(err, qt.IsNil)

	got, err := ar.ReadAll("test/test2.txt")
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, "this is another test")
}

func TestOpenFile(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "trace.kar")
	err := ioutil.WriteFile(path, build(c, "test/test1.txt", "this is a test"), 0644)
	c.Assert(err, qt.IsNil)

	f, err := os.Open(path)
	c.Assert(err, qt.IsNil)
	defer f.Close()

	ar, err := kar.Open(f)
	c.Assert(err, qt.IsNil)

	got, err := ar.ReadAll("test/test1.txt")
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, "this is a test")
}

func TestOpenCorrupted(t *testing.T) {
	c := qt.New(t)
	data := build(c, "test", testString1)

	for _, bad := range [][]byte{
		nil,
		[]byte("KAR"),
		append([]byte("RAK\x00"), data[4:]...),
		data[:kar.MagicLength+kar.HeaderSizeNumberLength+3],
	} {
		_, err := kar.Open(bytes.NewReader(bad))
		c.Assert(err, qt.Equals, kar.ErrFileFormat)
	}
}

func TestAddDuplicate(t *testing.T) {
	c := qt.New(t)
	builder, err := kar.NewBuilder(kar.Header{Author: "devblok"})
	c.Assert(err, qt.IsNil)
	defer builder.Close()

	c.Assert(builder.Add("test", strings.NewReader(testString1)), qt.IsNil)
	c.Assert(builder.Add("test", strings.NewReader(testString2)), qt.Equals, kar.ErrDuplicate)
	c.Assert(builder.Len(), qt.Equals, 1)
}

func TestAddConcurrently(t *testing.T) {
	c := qt.New(t)
	builder, err := kar.NewBuilder(kar.Header{Author: "devblok"})
	c.Assert(err, qt.IsNil)
	defer builder.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- builder.Add(fmt.Sprintf("pass%02d", i), strings.NewReader(strings.Repeat(testString1, i)))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		c.Assert(err, qt.IsNil)
	}

	var buf bytes.Buffer
	_, err = builder.WriteTo(&buf)
	c.Assert(err, qt.IsNil)

	ar, err := kar.Open(bytes.NewReader(buf.Bytes()))
	c.Assert(err, qt.IsNil)
	c.Assert(ar.Names(), qt.HasLen, 16)

	got, err := ar.ReadAll("pass07")
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, strings.Repeat(testString1, 7))
}
