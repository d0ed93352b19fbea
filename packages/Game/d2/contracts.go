package d2

import "d2mapi/packages/Game/layout"

// Contracts lists the binary shape of every concrete layout in this package.
func Contracts() []layout.Contract {
	return []layout.Contract{
		layout.ContractOf[PositionalRectangle_1_00]("PositionalRectangle", layout.Family1_00, 0x10,
			layout.Field{Name: "Left", Offset: 0x00},
			layout.Field{Name: "Right", Offset: 0x04},
			layout.Field{Name: "Top", Offset: 0x08},
			layout.Field{Name: "Bottom", Offset: 0x0C},
		),
		layout.ContractOf[EquipmentLayout_1_00]("EquipmentLayout", layout.Family1_00, 0x14,
			layout.Field{Name: "Position", Offset: 0x00},
			layout.Field{Name: "Width", Offset: 0x10},
			layout.Field{Name: "Height", Offset: 0x11},
		),
		layout.ContractOf[GridLayout_1_00]("GridLayout", layout.Family1_00, 0x18,
			layout.Field{Name: "NumColumns", Offset: 0x00},
			layout.Field{Name: "NumRows", Offset: 0x01},
			layout.Field{Name: "Position", Offset: 0x04},
			layout.Field{Name: "Width", Offset: 0x14},
			layout.Field{Name: "Height", Offset: 0x15},
		),
		layout.ContractOf[InventoryRecord_1_00]("InventoryRecord", layout.Family1_00, 0xF0,
			layout.Field{Name: "Position", Offset: 0x00},
			layout.Field{Name: "GridLayout", Offset: 0x10},
			layout.Field{Name: "EquipmentSlots", Offset: 0x28},
		),
		layout.ContractOf[BeltRecord_1_00]("BeltRecord", layout.Family1_00, 0x108,
			layout.Field{Name: "Reserved00", Offset: 0x00},
			layout.Field{Name: "NumSlots", Offset: 0x04},
			layout.Field{Name: "SlotPositions", Offset: 0x08},
		),
		layout.ContractOf[Cel_1_00]("Cel", layout.Family1_00, 0x20,
			layout.Field{Name: "Width", Offset: 0x04},
			layout.Field{Name: "Height", Offset: 0x08},
			layout.Field{Name: "OffsetX", Offset: 0x0C},
			layout.Field{Name: "OffsetY", Offset: 0x10},
			layout.Field{Name: "NextBlock", Offset: 0x18},
			layout.Field{Name: "Length", Offset: 0x1C},
		),
		layout.ContractOf[MpqArchiveHandle_1_00]("MpqArchiveHandle", layout.Family1_00, 0x108,
			layout.Field{Name: "MpqArchive", Offset: 0x00},
			layout.Field{Name: "MpqArchivePath", Offset: 0x04},
		),
		layout.ContractOf[CelContext_1_00]("CelContext", layout.Family1_00, 0x48,
			layout.Field{Name: "Frame", Offset: 0x38},
			layout.Field{Name: "Direction", Offset: 0x40},
			layout.Field{Name: "CelFile", Offset: 0x44},
		),
		layout.ContractOf[CelContext_1_12A]("CelContext", layout.Family1_12A, 0x48,
			layout.Field{Name: "CelFile", Offset: 0x04},
			layout.Field{Name: "Frame", Offset: 0x08},
			layout.Field{Name: "Direction", Offset: 0x40},
		),
		layout.ContractOf[CelContext_1_13C]("CelContext", layout.Family1_13C, 0x48,
			layout.Field{Name: "Direction", Offset: 0x00},
			layout.Field{Name: "CelFile", Offset: 0x34},
			layout.Field{Name: "Frame", Offset: 0x38},
		),
	}
}
