// Package inputfwd forwards local keyboard and pointer events to the
// remote capture server as a virtual HID device. It owns no policy about
// which events to forward; it only tracks bitset state and serialises HID
// boot reports, per spec.md §4.8.
package inputfwd

// reportIDKeyboard and reportIDMouse are the first byte of every outbound
// HID report, matching the Report ID fields baked into descriptorBytes.
const (
	reportIDKeyboard = 0x01
	reportIDMouse    = 0x02
)

// keyboardReportSize and mouseReportSize are the fixed wire sizes from
// spec.md §4.8: a 9-byte boot keyboard report (report id, modifier byte,
// one constant reserved byte, six usage-code slots — matching the
// reserved-byte Input item in descriptorBytes) and a 7-byte mouse report
// (report id, button byte, dx/dy as little-endian int16, one int8 wheel
// delta).
const (
	keyboardReportSize = 9
	mouseReportSize    = 7
)

// modifierCodeLow and modifierCodeHigh bound the evdev-to-HID-usage
// modifier range (LCTRL..RGUI) that packs into the keyboard report's
// single modifier byte instead of the six-slot usage array.
const (
	modifierCodeLow  = 0xE0
	modifierCodeHigh = 0xE7
)

// descriptorBytes is the 108-byte composite HID report descriptor blob
// from spec.md §6: one top-level Application collection for the boot
// keyboard (report ID 1), one for the three-button relative mouse with
// 16-bit relative X/Y and an 8-bit wheel (report ID 2). This is external-
// protocol data consumed by the UHID device node on the other side of
// Sink — the wire layout, not the semantics, is what must stay stable.
var descriptorBytes = []byte{
	// --- Keyboard, report ID 1 (boot keyboard report) ---
	0x05, 0x01, //   Usage Page (Generic Desktop)
	0x09, 0x06, //   Usage (Keyboard)
	0xA1, 0x01, //   Collection (Application)
	0x85, 0x01, //     Report ID (1)
	0x05, 0x07, //     Usage Page (Key Codes)
	0x19, 0xE0, //     Usage Minimum (224)
	0x29, 0xE7, //     Usage Maximum (231)
	0x15, 0x00, //     Logical Minimum (0)
	0x25, 0x01, //     Logical Maximum (1)
	0x75, 0x01, //     Report Size (1)
	0x95, 0x08, //     Report Count (8)
	0x81, 0x02, //     Input (Data,Var,Abs) — modifier byte
	0x95, 0x01, //     Report Count (1)
	0x75, 0x08, //     Report Size (8)
	0x81, 0x01, //     Input (Constant) — reserved byte
	0x95, 0x06, //     Report Count (6)
	0x75, 0x08, //     Report Size (8)
	0x15, 0x00, //     Logical Minimum (0)
	0x25, 0x65, //     Logical Maximum (101)
	0x05, 0x07, //     Usage Page (Key Codes)
	0x19, 0x00, //     Usage Minimum (0)
	0x29, 0x65, //     Usage Maximum (101)
	0x81, 0x00, //     Input (Data,Array) — up to six keycodes
	0xC0, //          End Collection

	// --- Mouse, report ID 2 (3 buttons + 16-bit relative X/Y + wheel) ---
	0x05, 0x01, //   Usage Page (Generic Desktop)
	0x09, 0x02, //   Usage (Mouse)
	0xA1, 0x01, //   Collection (Application)
	0x85, 0x02, //     Report ID (2)
	0x05, 0x09, //     Usage Page (Button)
	0x19, 0x01, //     Usage Minimum (1)
	0x29, 0x03, //     Usage Maximum (3)
	0x15, 0x00, //     Logical Minimum (0)
	0x25, 0x01, //     Logical Maximum (1)
	0x95, 0x03, //     Report Count (3)
	0x75, 0x01, //     Report Size (1)
	0x81, 0x02, //     Input (Data,Var,Abs) — L/R/M button bits
	0x95, 0x01, //     Report Count (1)
	0x75, 0x05, //     Report Size (5)
	0x81, 0x01, //     Input (Constant) — padding
	0x05, 0x01, //     Usage Page (Generic Desktop)
	0x09, 0x30, //     Usage (X)
	0x09, 0x31, //     Usage (Y)
	0x16, 0x00, 0x80, //     Logical Minimum (-32768)
	0x26, 0xFF, 0x7F, //     Logical Maximum (32767)
	0x75, 0x10, //     Report Size (16)
	0x95, 0x02, //     Report Count (2)
	0x81, 0x06, //     Input (Data,Var,Rel) — dx, dy
	0x09, 0x38, //     Usage (Wheel)
	0x15, 0x81, //     Logical Minimum (-127)
	0x25, 0x7F, //     Logical Maximum (127)
	0x75, 0x08, //     Report Size (8)
	0x95, 0x01, //     Report Count (1)
	0x81, 0x06, //     Input (Data,Var,Rel) — wheel delta
	0xC0, //          End Collection
}

// UHIDDescriptor is what Sink.CreateDescriptor passes to the out-of-scope
// virtual-HID device node to register the composite device.
type UHIDDescriptor struct {
	Name             string
	ReportDescriptor []byte
	Bus              uint16
	Vendor           uint32
	Product          uint32
	Version          uint32
}

// defaultDescriptor is the descriptor Forwarder registers on startup.
func defaultDescriptor() UHIDDescriptor {
	return UHIDDescriptor{
		Name:             "prismclient virtual input",
		ReportDescriptor: descriptorBytes,
		Bus:              0x03, // BUS_USB
		Vendor:           0x0001,
		Product:          0x0001,
		Version:          1,
	}
}
