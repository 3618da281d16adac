// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package monster

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/taibuivan/mhinfo/internal/attribute"
	"github.com/taibuivan/mhinfo/internal/platform/apperr"
)

// # Dataset Parsing

// Parse decodes a dataset document.
//
// The root must be an array and every element must carry a "names" object;
// otherwise the whole document is rejected with INVALID_FORMAT and no partial
// list is returned. Object keys are read in document order, which is the
// order names are kept in.
func Parse(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperr.InvalidFormat("dataset is not valid JSON", nil)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, apperr.InvalidFormat("invalid root element, must be an array of objects", nil)
	}

	var (
		records  = []Record{}
		parseErr error
		index    int
	)

	root.ForEach(func(_, element gjson.Result) bool {
		record, err := parseRecord(element)
		if err != nil {
			parseErr = apperr.InvalidFormat(fmt.Sprintf("element %d", index), err)
			return false
		}
		records = append(records, record)
		index++
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return records, nil
}

func parseRecord(element gjson.Result) (Record, error) {
	names := element.Get("names")
	if !element.IsObject() || !names.IsObject() {
		return Record{}, errors.New("does not contain a 'names' property")
	}

	record := Record{
		Icon:  int(element.Get("icon").Int()),
		Names: []LocalizedName{},
	}

	names.ForEach(func(language, value gjson.Result) bool {
		record.Names = append(record.Names, LocalizedName{
			Language: language.String(),
			Value:    value.String(),
		})
		return true
	})

	attacks, err := parseMagnitudes(element.Get("attack"), "attack")
	if err != nil {
		return Record{}, err
	}
	sort.SliceStable(attacks, func(i, j int) bool { return attacks[i].Value < attacks[j].Value })
	record.Attacks = attacks

	weaknesses, err := parseMagnitudes(element.Get("weak"), "weak")
	if err != nil {
		return Record{}, err
	}
	record.Weaknesses = attribute.Normalize(weaknesses)

	if kind := element.Get("type"); kind.Type == gjson.String {
		record.Type = kind.String()
	}

	return record, nil
}

// parseMagnitudes reads an optional token → number object.
func parseMagnitudes(object gjson.Result, property string) ([]attribute.Magnitude, error) {
	out := []attribute.Magnitude{}
	if !object.Exists() || object.Type == gjson.Null {
		return out, nil
	}
	if !object.IsObject() {
		return nil, fmt.Errorf("'%s' must be an object", property)
	}

	var err error
	object.ForEach(func(token, value gjson.Result) bool {
		if value.Type != gjson.Number {
			err = fmt.Errorf("'%s.%s' must be a number", property, token.String())
			return false
		}
		out = append(out, attribute.Magnitude{
			Attribute: attribute.FromDataToken(token.String()),
			Value:     int(math.Round(value.Float())),
		})
		return true
	})
	return out, err
}
