package handler

import (
	"bytes"
	"sync"
)

// replyBufferSize fits a full-length reply plus its TwiML or JSON envelope.
const replyBufferSize = 2048

// bufferPool holds response buffers shared by the JSON and TwiML writers
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, replyBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
