package sav

import "github.com/JohnDeved/pokemon-save-web-sub004/internal/hash"

func checksum(b []byte) uint16 {
	return hash.Checksum(b)
}

func checksum16(b []byte) uint16 {
	return hash.Checksum16(b)
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}

	return true
}
