// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr21

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EncodeAll returns the codes for texts, in order, encoding them in
// parallel.  The first error stops the remaining work and is returned
// with the 1-based index of the failed text.
func (o *Options) EncodeAll(ctx context.Context, texts []string) ([]*Code, error) {
	e, err := o.encoder()
	if err != nil {
		return nil, err
	}
	codes := make([]*Code, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := e.Encode(s)
			if err != nil {
				return fmt.Errorf("text %d: %w", i+1, err)
			}
			codes[i] = o.code(m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return codes, nil
}

// EncodeAll encodes texts with default options.
func EncodeAll(ctx context.Context, texts []string) ([]*Code, error) {
	return (*Options)(nil).EncodeAll(ctx, texts)
}
