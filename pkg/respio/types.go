package respio

const (
	CRLF     = "\r\n"
	Nil      = "$-1\r\n"
	NilArray = "*-1\r\n"
)

const (
	RespStatus = byte('+') // +<string>\r\n
	RespError  = byte('-') // -<string>\r\n
	RespInt    = byte(':') // :<number>\r\n
	RespString = byte('$') // $<length>\r\n<bytes>\r\n
	RespArray  = byte('*') // *<len>\r\n...
)
