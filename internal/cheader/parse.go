// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cheader

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	openRe    = regexp.MustCompile(`^read_only const U8 ` + Prefix + `([A-Za-z0-9_]+)\[\] = \{$`)
	literalRe = regexp.MustCompile(`^0x([0-9a-f]{2}),$`)
)

// Parse reads the declarations in a header written by Writer and
// returns them in file order. Lines outside declarations are ignored.
func Parse(r io.Reader) ([]Decl, error) {
	var decls []Decl
	var cur *Decl

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		if cur == nil {
			if m := openRe.FindStringSubmatch(line); m != nil {
				cur = &Decl{Name: m[1], Data: []byte{}}
			}
			continue
		}

		if line == "};" {
			decls = append(decls, *cur)
			cur = nil
			continue
		}
		for _, lit := range strings.Fields(line) {
			m := literalRe.FindStringSubmatch(lit)
			if m == nil {
				return nil, fmt.Errorf("line %d: malformed byte literal %q in %s", lineno, lit, cur.Ident())
			}
			b, _ := strconv.ParseUint(m[1], 16, 8)
			cur.Data = append(cur.Data, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, fmt.Errorf("unterminated declaration of %s", cur.Ident())
	}
	return decls, nil
}
