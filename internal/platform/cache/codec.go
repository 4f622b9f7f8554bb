package cache

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

func encode(v any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encode cache entry: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

func decode(raw []byte, target any) error {
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode cache entry: %w", err)
	}
	return nil
}
