package imem

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Loader reads instruction memories from text sources.
//
// A source holds one hexadecimal word per line. Blank lines and lines starting
// with '#' are skipped and take no address.
type Loader struct {
	logger     *log.Logger
	warnLogger *log.Logger
	lenient    bool
}

// Option configures a Loader.
type Option func(l *Loader)

// WithLogger sets where progress is written. Warnings and errors also go
// there unless WithWarningLogger is given. By default everything is discarded.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithWarningLogger sets where warnings and errors are written.
func WithWarningLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		l.warnLogger = logger
	}
}

// WithLenientParsing makes the loader accept malformed lines. The longest
// leading run of hex digits is used, a line without one loads as 0, and a
// value that does not fit 32 bits saturates to 0xFFFFFFFF. Each substitution
// is reported as a MalformedInstruction warning.
func WithLenientParsing() Option {
	return func(l *Loader) {
		l.lenient = true
	}
}

// NewLoader creates a loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		logger: log.New(io.Discard, "", 0),
	}

	for _, o := range opts {
		o(l)
	}

	if l.warnLogger == nil {
		l.warnLogger = l.logger
	}

	return l
}

// LoadFile loads a memory from a file.
func LoadFile(path string, opts ...Option) (*Memory, error) {
	return NewLoader(opts...).LoadFile(path)
}

// Load loads a memory from a reader.
func Load(r io.Reader, opts ...Option) (*Memory, error) {
	return NewLoader(opts...).Load(r)
}

// LoadFile loads a memory from a file.
func (l *Loader) LoadFile(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		l.warnLogger.Printf("ERROR: Cannot open file '%s'", path)
		return nil, errors.Wrapf(ErrSourceUnavailable, "%s: %v", path, err)
	}
	defer f.Close()

	m, err := l.load(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "loading %s", path)
	}

	m.source = path
	l.logger.Printf("File '%s' loaded successfully with %d instructions",
		path, m.Len())

	return m, nil
}

// Load loads a memory from a reader.
func (l *Loader) Load(r io.Reader) (*Memory, error) {
	return l.load(r)
}

func (l *Loader) load(r io.Reader) (*Memory, error) {
	m := &Memory{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		text := strings.TrimSpace(scanner.Text())
		if skipLine(text) {
			continue
		}

		if len(m.words) == Capacity {
			l.warn(m, Warning{
				Kind: CapacityExceeded,
				Line: lineNo,
				Msg: "Instruction memory full (" +
					strconv.Itoa(Capacity) + " max), stopping load",
			})

			break
		}

		word, err := l.parse(m, lineNo, text)
		if err != nil {
			return nil, err
		}

		addr := len(m.words)
		m.words = append(m.words, word)

		if addr < 10 || addr%10 == 0 {
			l.logger.Printf("Loaded Instruction[%03d]: 0x%08x", addr, word)
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			// The scanner stops on the line it could not hold, even when
			// lenient, so the rest of the source is never read.
			return nil, errors.Wrapf(ErrMalformedInstruction,
				"line %d: longer than %d bytes", lineNo+1, bufio.MaxScanTokenSize)
		}

		return nil, errors.Wrap(err, "reading instruction source")
	}

	if m.Empty() {
		l.warn(m, Warning{
			Kind: EmptyProgram,
			Msg:  "no instruction loaded, the run will stop after reset",
		})
	}

	return m, nil
}

func skipLine(text string) bool {
	return text == "" || text[0] == '#'
}

func (l *Loader) parse(m *Memory, lineNo int, text string) (uint32, error) {
	word, err := ParseWord(text)
	if err == nil {
		return word, nil
	}

	if !l.lenient {
		return 0, errors.Wrapf(ErrMalformedInstruction, "line %d: %q", lineNo, text)
	}

	word = ParseWordLenient(text)
	l.warn(m, Warning{
		Kind: MalformedInstruction,
		Line: lineNo,
		Msg:  "cannot parse " + strconv.Quote(text) + ", using 0x" + hex8(word),
	})

	return word, nil
}

func (l *Loader) warn(m *Memory, w Warning) {
	m.warnings = append(m.warnings, w)
	l.warnLogger.Print(w.String())
}

func hex8(w uint32) string {
	s := strconv.FormatUint(uint64(w), 16)
	return strings.Repeat("0", 8-len(s)) + s
}
