package gc9a01a

// Controller opcodes used by the driver.
const (
	cmdSWRESET = 0x01 // Software reset
	cmdSLPIN   = 0x10 // Enter sleep mode
	cmdSLPOUT  = 0x11 // Leave sleep mode
	cmdINVOFF  = 0x20 // Display inversion off
	cmdINVON   = 0x21 // Display inversion on
	cmdDISPOFF = 0x28 // Display off
	cmdDISPON  = 0x29 // Display on
	cmdCASET   = 0x2A // Column address set
	cmdRASET   = 0x2B // Row address set
	cmdRAMWR   = 0x2C // Memory write
	cmdTEON    = 0x35 // Tearing effect line on
	cmdMADCTL  = 0x36 // Memory access control
	cmdCOLMOD  = 0x3A // Pixel format
)

type command struct {
	op     byte
	params []byte
}

// initSequence is the power-up register sequence sent after reset. Most
// registers are undocumented vendor settings; they are replayed verbatim.
var initSequence = []command{
	{0xEF, nil}, // Inter register enable 2
	{0xEB, []byte{0x14}},
	{0xFE, nil}, // Inter register enable 1
	{0xEF, nil},
	{0xEB, []byte{0x14}},
	{0x84, []byte{0x40}},
	{0x85, []byte{0xFF}},
	{0x86, []byte{0xFF}},
	{0x87, []byte{0xFF}},
	{0x88, []byte{0x0A}},
	{0x89, []byte{0x21}},
	{0x8A, []byte{0x00}},
	{0x8B, []byte{0x80}},
	{0x8C, []byte{0x01}},
	{0x8D, []byte{0x01}},
	{0x8E, []byte{0xFF}},
	{0x8F, []byte{0xFF}},
	{0xB6, []byte{0x00, 0x20}}, // Display function control
	{cmdMADCTL, []byte{0x98}},  // Memory access control
	{cmdCOLMOD, []byte{0x05}},  // 16 bits per pixel
	{0x90, []byte{0x08, 0x08, 0x08, 0x08}},
	{0xBD, []byte{0x06}},
	{0xBC, []byte{0x00}},
	{0xFF, []byte{0x60, 0x01, 0x04}},
	{0xC3, []byte{0x13}}, // Power control 2
	{0xC4, []byte{0x13}}, // Power control 3
	{0xC9, []byte{0x22}}, // Power control 4
	{0xBE, []byte{0x11}},
	{0xE1, []byte{0x10, 0x0E}},
	{0xDF, []byte{0x21, 0x0C, 0x02}},
	{0xF0, []byte{0x45, 0x09, 0x08, 0x08, 0x26, 0x2A}}, // Gamma 1
	{0xF1, []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}}, // Gamma 2
	{0xF2, []byte{0x45, 0x09, 0x08, 0x08, 0x26, 0x2A}}, // Gamma 3
	{0xF3, []byte{0x43, 0x70, 0x72, 0x36, 0x37, 0x6F}}, // Gamma 4
	{0xED, []byte{0x1B, 0x0B}},
	{0xAE, []byte{0x77}},
	{0xCD, []byte{0x63}},
	{0x70, []byte{0x07, 0x07, 0x04, 0x0E, 0x0F, 0x09, 0x07, 0x08, 0x03}},
	{0xE8, []byte{0x34}}, // Frame rate
	{0x62, []byte{0x18, 0x0D, 0x71, 0xED, 0x70, 0x70, 0x18, 0x0F, 0x71, 0xEF, 0x70, 0x70}},
	{0x63, []byte{0x18, 0x11, 0x71, 0xF1, 0x70, 0x70, 0x18, 0x13, 0x71, 0xF3, 0x70, 0x70}},
	{0x64, []byte{0x28, 0x29, 0xF1, 0x01, 0xF1, 0x00, 0x07}},
	{0x66, []byte{0x3C, 0x00, 0xCD, 0x67, 0x45, 0x45, 0x10, 0x00, 0x00, 0x00}},
	{0x67, []byte{0x00, 0x3C, 0x00, 0x00, 0x00, 0x01, 0x54, 0x10, 0x32, 0x98}},
	{0x74, []byte{0x10, 0x85, 0x80, 0x00, 0x00, 0x4E, 0x00}},
	{0x98, []byte{0x3E, 0x07}},
	{cmdTEON, nil},
	{cmdINVON, nil},
	{cmdSLPOUT, nil},
	{cmdDISPON, nil},
}
