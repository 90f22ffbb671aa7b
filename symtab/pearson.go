package symtab

// pearsonTable is the permutation used by the Pearson hash.
var pearsonTable = [256]uint8{
	0x83, 0x49, 0x60, 0x73, 0xed, 0xdf, 0x4a, 0xec, 0x29, 0xa6, 0xba, 0xc0, 0xf2, 0x22, 0x38, 0x7a,
	0x29, 0xa6, 0xba, 0xc0, 0xf2, 0x22, 0x38, 0x7a, 0xad, 0xa4, 0x54, 0x8a, 0x98, 0xa7, 0xe7, 0x2b,
	0xad, 0xa4, 0x54, 0x8a, 0x98, 0xa7, 0xe7, 0x2b, 0x08, 0xb8, 0x3f, 0x88, 0xc3, 0x9f, 0x92, 0x90,
	0x08, 0xb8, 0x3f, 0x88, 0xc3, 0x9f, 0x92, 0x90, 0x66, 0xe2, 0x0a, 0x34, 0x26, 0x28, 0xa3, 0x19,
	0x66, 0xe2, 0x0a, 0x34, 0x26, 0x28, 0xa3, 0x19, 0x58, 0xc7, 0x53, 0x24, 0x25, 0xe9, 0x5e, 0xd4,
	0x58, 0xc7, 0x53, 0x24, 0x25, 0xe9, 0x5e, 0xd4, 0x0b, 0xb2, 0x40, 0x55, 0xd7, 0xb4, 0xf0, 0xc2,
	0x0b, 0xb2, 0x40, 0x55, 0xd7, 0xb4, 0xf0, 0xc2, 0xd2, 0x82, 0x86, 0x52, 0x6d, 0xd6, 0x48, 0x87,
	0xd2, 0x82, 0x86, 0x52, 0x6d, 0xd6, 0x48, 0x87, 0x70, 0x44, 0xdc, 0x14, 0x2d, 0xe1, 0xfc, 0xb5,
	0x70, 0x44, 0xdc, 0x14, 0x2d, 0xe1, 0xfc, 0xb5, 0x35, 0x68, 0x7e, 0x9d, 0xea, 0xd5, 0x62, 0xc8,
	0x35, 0x68, 0x7e, 0x9d, 0xea, 0xd5, 0x62, 0xc8, 0x7f, 0xe3, 0x5c, 0xff, 0x5b, 0x4e, 0x41, 0x0d,
	0x7f, 0xe3, 0x5c, 0xff, 0x5b, 0x4e, 0x41, 0x0d, 0x09, 0xaf, 0x1f, 0x07, 0xee, 0x76, 0x9c, 0xd9,
	0x09, 0xaf, 0x1f, 0x07, 0xee, 0x76, 0x9c, 0xd9, 0x69, 0x03, 0xfe, 0x1d, 0xa2, 0xfa, 0xaa, 0x74,
	0x69, 0x03, 0xfe, 0x1d, 0xa2, 0xfa, 0xaa, 0x74, 0x64, 0x5d, 0xd1, 0xe6, 0xde, 0x27, 0x10, 0xb9,
	0x64, 0x5d, 0xd1, 0xe6, 0xde, 0x27, 0x10, 0xb9, 0x84, 0xd8, 0xbe, 0x7d, 0x89, 0xf9, 0x5f, 0x1a,
	0x84, 0xd8, 0xbe, 0x7d, 0x89, 0xf9, 0x5f, 0x1a, 0xa8, 0xa9, 0x46, 0x7b, 0xb1, 0x72, 0xf1, 0xc4,
	0xa8, 0xa9, 0x46, 0x7b, 0xb1, 0x72, 0xf1, 0xc4, 0x6c, 0xef, 0x0f, 0x67, 0x3b, 0x43, 0xc1, 0xe5,
}

// Hash computes the 8-bit Pearson hash of a name.
func Hash(name string) uint8 {
	var h uint8
	for i := 0; i < len(name); i++ {
		h = pearsonTable[h^name[i]]
	}

	return h
}
