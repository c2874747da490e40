package otmetrics

import "encoding/binary"

// ttcTag is the header tag of a TrueType or OpenType collection.
const ttcTag = 0x74746366 // "ttcf"

// RawTable locates the named table of font number index inside an
// OpenType font or collection blob and returns its bytes. It reports
// false when the blob is malformed, the index is out of range or the
// font has no such table.
func RawTable(data []byte, index int, tag string) ([]byte, bool) {
	if len(data) < 12 || len(tag) != 4 {
		return nil, false
	}
	start := uint32(0)
	if binary.BigEndian.Uint32(data[0:4]) == ttcTag {
		numFonts := int(binary.BigEndian.Uint32(data[8:12]))
		if index < 0 || index >= numFonts {
			return nil, false
		}
		off := 12 + 4*index
		if off+4 > len(data) {
			return nil, false
		}
		start = binary.BigEndian.Uint32(data[off : off+4])
	} else if index != 0 {
		return nil, false
	}
	return tableAt(data, start, tag)
}

// tableAt reads the table directory starting at off and slices out the
// named table.
func tableAt(data []byte, off uint32, tag string) ([]byte, bool) {
	if int64(off)+12 > int64(len(data)) {
		return nil, false
	}
	numTables := int(binary.BigEndian.Uint16(data[off+4 : off+6]))
	for i := 0; i < numTables; i++ {
		rec := int64(off) + 12 + int64(i)*16
		if rec+16 > int64(len(data)) {
			return nil, false
		}
		if string(data[rec:rec+4]) != tag {
			continue
		}
		tOff := int64(binary.BigEndian.Uint32(data[rec+8 : rec+12]))
		tLen := int64(binary.BigEndian.Uint32(data[rec+12 : rec+16]))
		if tOff < 0 || tLen < 0 || tOff+tLen > int64(len(data)) {
			return nil, false
		}
		return data[tOff : tOff+tLen], true
	}
	return nil, false
}
