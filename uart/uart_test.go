package uart

import (
	"errors"
	"testing"

	serial "github.com/daedaluz/goserial"
	"github.com/stretchr/testify/assert"
)

func Test_baudFlag_known_rates(t *testing.T) {
	assert.Equal(t, serial.B9600, baudFlag(9600))
	assert.Equal(t, serial.B38400, baudFlag(38400))
	assert.Equal(t, serial.B57600, baudFlag(57600))
	assert.Equal(t, serial.B115200, baudFlag(115200))
	assert.Equal(t, serial.B230400, baudFlag(230400))
}

func Test_baudFlag_unknown_rate_defaults_to_115200(t *testing.T) {
	assert.Equal(t, serial.B115200, baudFlag(4800))
}

type timeoutError struct{}

func (timeoutError) Error() string { return "i/o timeout" }
func (timeoutError) Timeout() bool { return true }

func Test_isTimeout(t *testing.T) {
	assert.True(t, isTimeout(timeoutError{}))
	assert.False(t, isTimeout(errors.New("eof")))
}
