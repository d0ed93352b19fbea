package version

// Header signatures of Storm.dll (before 1.14) and Game.exe (1.14 and later).
var signatureTable = []Entry{
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x05, 0x00, 0x34, 0x81, 0xD4, 0x56, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x02, 0x01, 0x0B, 0x01, 0x08, 0x00, 0x00, 0xC0, 0x2C, 0x00,
			0x00, 0xE0, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x42, 0x13, 0x29, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0xD0, 0x2C, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: LoD1_14A,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x05, 0x00, 0x38, 0x81, 0xD4, 0x56, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x02, 0x01, 0x0B, 0x01, 0x08, 0x00, 0x00, 0xC0, 0x2C, 0x00,
			0x00, 0xD0, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x82, 0xFB, 0x28, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0xD0, 0x2C, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: Classic1_14A,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x05, 0x00, 0x4D, 0xDF, 0x2C, 0x57, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x02, 0x01, 0x0B, 0x01, 0x08, 0x00, 0x00, 0xC0, 0x2C, 0x00,
			0x00, 0xD0, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0xE2, 0x50, 0x28, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0xD0, 0x2C, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: LoD1_14C,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x05, 0x00, 0x52, 0xDF, 0x2C, 0x57, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x02, 0x01, 0x0B, 0x01, 0x08, 0x00, 0x00, 0xC0, 0x2C, 0x00,
			0x00, 0xC0, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x82, 0xF9, 0x28, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0xD0, 0x2C, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: Classic1_14C,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x05, 0x00, 0xA8, 0x78, 0xFC, 0x56, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x02, 0x01, 0x0B, 0x01, 0x08, 0x00, 0x00, 0xC0, 0x2C, 0x00,
			0x00, 0xE0, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF2, 0x54, 0x28, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0xD0, 0x2C, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: LoD1_14B,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x05, 0x00, 0xAE, 0x78, 0xFC, 0x56, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x02, 0x01, 0x0B, 0x01, 0x08, 0x00, 0x00, 0xC0, 0x2C, 0x00,
			0x00, 0xD0, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x92, 0xFD, 0x28, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0xD0, 0x2C, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: Classic1_14B,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x05, 0x00, 0xBC, 0xDF, 0x4D, 0x57, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x02, 0x01, 0x0B, 0x01, 0x08, 0x00, 0x00, 0xB0, 0x2C, 0x00,
			0x00, 0x60, 0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x85, 0x29, 0x28, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0xC0, 0x2C, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: LoD1_14D,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x05, 0x00, 0xC4, 0xDF, 0x4D, 0x57, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x02, 0x01, 0x0B, 0x01, 0x08, 0x00, 0x00, 0xB0, 0x2C, 0x00,
			0x00, 0x50, 0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0xB5, 0xCC, 0x28, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0xC0, 0x2C, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: Classic1_14D,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x06, 0x00, 0x25, 0x47, 0x52, 0x39, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x0E, 0x21, 0x0B, 0x01, 0x06, 0x00, 0x00, 0xF0, 0x02, 0x00,
			0x00, 0x40, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0xA4, 0x02, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: V1_01,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x06, 0x00, 0x32, 0xA6, 0xDC, 0x3A, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x0E, 0x21, 0x0B, 0x01, 0x06, 0x00, 0x00, 0x00, 0x03, 0x00,
			0x00, 0x40, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x50, 0xA7, 0x02, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0x10, 0x03, 0x00, 0x00, 0x00, 0xFB, 0x6F, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: V1_07Beta,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x06, 0x00, 0x43, 0x0C, 0xD6, 0x3A, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x0E, 0x21, 0x0B, 0x01, 0x06, 0x00, 0x00, 0x00, 0x03, 0x00,
			0x00, 0x40, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x50, 0xA7, 0x02, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0x10, 0x03, 0x00, 0x00, 0x00, 0xFB, 0x6F, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: V1_06,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x06, 0x00, 0x79, 0xBD, 0x20, 0x39, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x0E, 0x21, 0x0B, 0x01, 0x06, 0x00, 0x00, 0xF0, 0x02, 0x00,
			0x00, 0x40, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0xA4, 0x02, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: Beta1_02StressTest,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x06, 0x00, 0xB5, 0x92, 0xF5, 0x3A, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x0E, 0x21, 0x0B, 0x01, 0x06, 0x00, 0x00, 0x00, 0x03, 0x00,
			0x00, 0x40, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x50, 0xA7, 0x02, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0x10, 0x03, 0x00, 0x00, 0x00, 0xFB, 0x6F, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: V1_07,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x06, 0x00, 0xB7, 0x70, 0xD0, 0x38, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x0E, 0x21, 0x0B, 0x01, 0x06, 0x00, 0x00, 0xF0, 0x02, 0x00,
			0x00, 0x40, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x70, 0x9A, 0x02, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: Beta1_02,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x06, 0x00, 0xBC, 0xC7, 0x2E, 0x39, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x0E, 0x21, 0x0B, 0x01, 0x06, 0x00, 0x00, 0xF0, 0x02, 0x00,
			0x00, 0x40, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x20, 0xA4, 0x02, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: V1_00,
	},
	{
		Signature: Signature{
			0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x06, 0x00, 0xC1, 0x7B, 0xE0, 0x3A, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x0E, 0x21, 0x0B, 0x01, 0x06, 0x00, 0x00, 0x00, 0x03, 0x00,
			0x00, 0x40, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x50, 0xA7, 0x02, 0x00, 0x00, 0x10, 0x00, 0x00,
			0x00, 0x10, 0x03, 0x00, 0x00, 0x00, 0xFB, 0x6F, 0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		},
		Revision: V1_06B,
	},
}

// Header signatures of the D2SE launcher executable.
var launcherSignatures = []Signature{
	{
		0x50, 0x45, 0x00, 0x00, 0x4C, 0x01, 0x05, 0x00, 0x5F, 0xDC, 0xB5, 0x4D, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0xE0, 0x00, 0x0F, 0x01, 0x0B, 0x01, 0x02, 0x32, 0x00, 0x08, 0x01, 0x00,
		0x00, 0x8A, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x3C, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00,
		0x00, 0x20, 0x01, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00,
	},
}

var (
	Default   = mustTable(signatureTable)
	Launchers = mustSet(launcherSignatures)
)
