package bfvm

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func run(t *testing.T, src string, input string, tapeSize int) (string, *Engine, error) {
	t.Helper()
	program := mustTranslate(t, src)
	buf := new(bytes.Buffer)
	out := bufio.NewWriter(buf)
	engine := NewEngine(program, tapeSize, strings.NewReader(input), out)
	err := engine.Run()
	return buf.String(), engine, err
}

func TestIncrementWraparound(t *testing.T) {
	for _, n := range []int{0, 1, 65, 127, 128, 255, 256, 300, 513} {
		output, _, err := run(t, strings.Repeat("+", n)+".", "", 10)
		if err != nil {
			t.Fatal(err)
		}
		if output != string([]byte{byte(n % 256)}) {
			t.Fatalf("%d: got %q", n, output)
		}
	}
}

func TestDecrementWraparound(t *testing.T) {
	output, engine, err := run(t, "-.", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\xff" {
		t.Fatalf("got %q", output)
	}
	if engine.Memory[0] != -1 {
		t.Fatalf("got %v", engine.Memory[0])
	}
}

func TestMultiply(t *testing.T) {
	output, engine, err := run(t, "++++++++[>++++++++<-]>.", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if output != "@" {
		t.Fatalf("got %q", output)
	}
	if engine.Memory[0] != 0 || engine.Memory[1] != 64 {
		t.Fatalf("got %v", engine.Memory[:2])
	}
	if engine.Loc != 1 {
		t.Fatalf("got %v", engine.Loc)
	}
}

func TestHelloWorld(t *testing.T) {
	output, _, err := run(t,
		"++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++.",
		"", 30000)
	if err != nil {
		t.Fatal(err)
	}
	if output != "Hello World!\n" {
		t.Fatalf("got %q", output)
	}
}

func TestClearLoop(t *testing.T) {
	output, engine, err := run(t, "+++[-]", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if output != "" {
		t.Fatalf("got %q", output)
	}
	if engine.Memory[0] != 0 {
		t.Fatalf("got %v", engine.Memory[0])
	}
	if !engine.Halted() {
		t.Fatal("should halt")
	}
}

func TestSkipLoop(t *testing.T) {
	// zero control cell skips the whole body
	output, _, err := run(t, "[.+[.]].", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x00" {
		t.Fatalf("got %q", output)
	}
}

func TestOutputZero(t *testing.T) {
	output, engine, err := run(t, ".", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x00" {
		t.Fatalf("got %q", output)
	}
	if len(engine.Program) != 2 || !sameOp(engine.Program[1].Op, Halt) {
		t.Fatalf("got %d cells", len(engine.Program))
	}
	if engine.PC != 1 {
		t.Fatalf("got %v", engine.PC)
	}
}

func TestInput(t *testing.T) {
	output, _, err := run(t, ",>,<.>.", "xy", 10)
	if err != nil {
		t.Fatal(err)
	}
	if output != "xy" {
		t.Fatalf("got %q", output)
	}

	// EOF leaves the cell unchanged
	output, _, err = run(t, "+++,.,.", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x03\x03" {
		t.Fatalf("got %q", output)
	}
}

func TestCat(t *testing.T) {
	output, _, err := run(t, ",[.,]", "hello", 10)
	if err != nil {
		t.Fatal(err)
	}
	if output != "hello" {
		t.Fatalf("got %q", output)
	}
}

type snapshotReader struct {
	in    io.ByteReader
	out   *bytes.Buffer
	shown []string
}

func (r *snapshotReader) ReadByte() (byte, error) {
	r.shown = append(r.shown, r.out.String())
	return r.in.ReadByte()
}

func TestInputFlushesOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	in := &snapshotReader{
		in:  strings.NewReader("xy"),
		out: buf,
	}
	program := mustTranslate(t, "+++++++[>+++++++++<-]>.,.,.")
	engine := NewEngine(program, 10, in, bufio.NewWriter(buf))
	if err := engine.Run(); err != nil {
		t.Fatal(err)
	}
	if len(in.shown) != 2 {
		t.Fatalf("got %v", in.shown)
	}
	if in.shown[0] != "?" {
		t.Fatalf("got %q", in.shown[0])
	}
	if in.shown[1] != "?x" {
		t.Fatalf("got %q", in.shown[1])
	}
	if buf.String() != "?xy" {
		t.Fatalf("got %q", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestOutputErrorIgnored(t *testing.T) {
	program := mustTranslate(t, strings.Repeat("+.", 100))
	out := bufio.NewWriterSize(failWriter{}, 16)
	engine := NewEngine(program, 10, strings.NewReader(""), out)
	if err := engine.Run(); err != nil {
		t.Fatal(err)
	}
	if engine.Memory[0] != 100 {
		t.Fatalf("got %v", engine.Memory[0])
	}
}

func TestHaltFlushes(t *testing.T) {
	buf := new(bytes.Buffer)
	out := bufio.NewWriterSize(buf, 4096)
	engine := NewEngine(mustTranslate(t, "+."), 10, strings.NewReader(""), out)
	if err := engine.Run(); err != nil {
		t.Fatal(err)
	}
	if out.Buffered() != 0 {
		t.Fatalf("got %d buffered", out.Buffered())
	}
	if buf.String() != "\x01" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestTapeBounds(t *testing.T) {
	_, engine, err := run(t, "<+", "", 10)
	if !errors.Is(err, ErrTapeBounds) {
		t.Fatalf("got %v", err)
	}
	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("got %T", err)
	}
	if fault.PC != 1 || fault.Loc != -1 {
		t.Fatalf("got %+v", fault)
	}
	if engine.Halted() {
		t.Fatal("should not halt")
	}

	_, _, err = run(t, ">>+", "", 2)
	if !errors.Is(err, ErrTapeBounds) {
		t.Fatalf("got %v", err)
	}

	// moves are not checked, only accesses
	output, _, err := run(t, "<>+.", "", 2)
	if err != nil {
		t.Fatal(err)
	}
	if output != "\x01" {
		t.Fatalf("got %q", output)
	}
}

func TestNotOperation(t *testing.T) {
	program := Program{
		TargetCell(0),
		OpCell(Halt),
	}
	engine := NewEngine(program, 10, strings.NewReader(""), bufio.NewWriter(new(bytes.Buffer)))
	err := engine.Run()
	if !errors.Is(err, ErrNotOperation) {
		t.Fatalf("got %v", err)
	}
}

func TestJumpOnOpCell(t *testing.T) {
	defer func() {
		p := recover()
		err, ok := p.(error)
		if !ok || !errors.Is(err, ErrNotTarget) {
			t.Fatalf("got %v", p)
		}
	}()
	OpCell(Increment).Jump()
}

func TestKindString(t *testing.T) {
	if KindOp.String() != "op" || KindTarget.String() != "target" {
		t.Fatal()
	}
	if Kind(9).String() != "Kind(9)" {
		t.Fatalf("got %v", Kind(9))
	}
}

func BenchmarkRun(b *testing.B) {
	program, err := Translate(
		strings.NewReader("++++++++[>++++++++[>++++++++[>+>-<<-]<-]<-]"),
		NewOpTable(),
		30000,
	)
	if err != nil {
		b.Fatal(err)
	}
	out := bufio.NewWriter(new(bytes.Buffer))
	in := strings.NewReader("")
	for b.Loop() {
		engine := NewEngine(program, 30000, in, out)
		if err := engine.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
