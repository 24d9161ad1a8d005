package hostserial

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tarm/serial"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig("/dev/ttyUSB0")
	require.Equal(t, "/dev/ttyUSB0", c.Device)
	require.Equal(t, 115200, c.Baud)
	require.Equal(t, 100*time.Millisecond, c.ReadTimeout)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	require.ErrorIs(t, Config{Baud: 115200}.Validate(), ErrNoDevice)
	require.ErrorIs(t, Config{Device: "x"}.Validate(), ErrBadBaud)
	require.ErrorIs(t, Config{Device: "x", Baud: -1}.Validate(), ErrBadBaud)
}

func TestSerialConfig_Is8N1(t *testing.T) {
	sc := DefaultConfig("/dev/ttyACM0").serialConfig()
	require.Equal(t, "/dev/ttyACM0", sc.Name)
	require.Equal(t, byte(8), sc.Size)
	require.Equal(t, serial.ParityNone, sc.Parity)
	require.Equal(t, serial.Stop1, sc.StopBits)
}

func TestOpen_InvalidConfigDoesNotTouchDevice(t *testing.T) {
	_, err := Open(Config{})
	require.ErrorIs(t, err, ErrNoDevice)
}

func TestOpen_MissingDeviceWrapsError(t *testing.T) {
	dev := filepath.Join(t.TempDir(), "nope")
	_, err := Open(DefaultConfig(dev))
	require.Error(t, err)
	require.Contains(t, err.Error(), dev)
}
