package util

func IsNumber(b byte) bool {
	return b >= '0' && b <= '9'
}

func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
