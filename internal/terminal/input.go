package terminal

import (
	"io"
	"sync"
)

// inputMux owns the only reader of the input stream. Each chunk read is
// handed to the line editor, or to ReadKey while a key read is pending, so the
// two never race for the same bytes.
type inputMux struct {
	mu      sync.Mutex
	cond    *sync.Cond
	keyMode bool
	lineBuf []byte
	keyBuf  []byte
	err     error
	once    sync.Once
	in      io.Reader
}

func newInputMux(in io.Reader) *inputMux {
	m := &inputMux{in: in}
	m.cond = sync.NewCond(&m.mu)
	return m
}

func (m *inputMux) start() {
	m.once.Do(func() { go m.pump() })
}

func (m *inputMux) pump() {
	buf := make([]byte, 256)
	for {
		n, err := m.in.Read(buf)

		m.mu.Lock()
		if n > 0 {
			if m.keyMode {
				m.keyBuf = append(m.keyBuf, buf[:n]...)
			} else {
				m.lineBuf = append(m.lineBuf, buf[:n]...)
			}
		}
		if err != nil && m.err == nil {
			m.err = err
		}
		stop := m.err != nil
		m.cond.Broadcast()
		m.mu.Unlock()

		if stop {
			return
		}
	}
}

// Read implements io.Reader for the line editor.
func (m *inputMux) Read(p []byte) (int, error) {
	m.start()

	m.mu.Lock()
	defer m.mu.Unlock()
	for len(m.lineBuf) == 0 && m.err == nil {
		m.cond.Wait()
	}
	if len(m.lineBuf) == 0 {
		return 0, m.err
	}
	n := copy(p, m.lineBuf)
	m.lineBuf = m.lineBuf[n:]
	return n, nil
}

// Close unblocks pending reads. The underlying reader is left open.
func (m *inputMux) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err == nil {
		m.err = io.EOF
	}
	m.cond.Broadcast()
	return nil
}

// readKey waits for the next keystroke, routing input away from the line editor meanwhile.
func (m *inputMux) readKey() (Key, error) {
	m.start()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyMode = true
	defer func() { m.keyMode = false }()

	for {
		if len(m.keyBuf) > 0 {
			key, n := DecodeKey(m.keyBuf)
			if n > 0 {
				m.keyBuf = m.keyBuf[n:]
				if key.Code != KeyNone {
					return key, nil
				}
				continue
			}
		}
		if m.err != nil {
			return Key{}, m.err
		}
		m.cond.Wait()
	}
}
