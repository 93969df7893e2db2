package chattext

import (
	"encoding/json"
	"strconv"
)

// Wire field names. These are part of the wire contract and case-sensitive.
const (
	keyText           = "text"
	keyTranslate      = "translate"
	keyTranslateWith  = "with"
	keyScore          = "score"
	keyScoreName      = "name"
	keyScoreObjective = "objective"
	keyScoreValue     = "value"
	keySelector       = "selector"
	keyKeybind        = "keybind"
	keyExtra          = "extra"
	keyNBT            = "nbt"
	keyNBTInterpret   = "interpret"
	keyNBTBlock       = "block"
	keyNBTEntity      = "entity"
	keyNBTStorage     = "storage"
	keySeparator      = "separator"
)

// DecodeTree reconstructs a Component from a generic document tree
// (map[string]any object, []any array, or a primitive). Malformed input is
// reported as Issues; the decode is all-or-nothing, a malformed subtree
// aborts the whole decode.
//
// Objects are classified by the first matching discriminator field in the
// fixed order text, translate, score, selector, keybind, nbt. An object
// carrying several discriminators decodes by the earliest one; the rest are
// ignored. This order is part of the wire contract.
func DecodeTree(node any) (Component, error) {
	return decodeNode(node, "")
}

func decodeNode(node any, path string) (Component, error) {
	if s, ok := primitiveString(node); ok {
		return NewText(s), nil
	}
	switch v := node.(type) {
	case []any:
		if len(v) == 0 {
			return nil, singleIssue(path, CodeUnknownShape, "cannot decode an empty array as a component", node)
		}
		root, err := decodeNode(v[0], path+"/0")
		if err != nil {
			return nil, err
		}
		for i, el := range v[1:] {
			child, err := decodeNode(el, path+"/"+strconv.Itoa(i+1))
			if err != nil {
				return nil, err
			}
			root = root.Append(child)
		}
		return root, nil
	case map[string]any:
		return decodeObject(v, path)
	}
	return nil, singleIssue(path, CodeUnknownShape, "cannot decode node as a component", node)
}

func decodeObject(obj map[string]any, path string) (Component, error) {
	var c Component
	switch {
	case has(obj, keyText):
		content, err := stringField(obj, keyText, path)
		if err != nil {
			return nil, err
		}
		c = NewText(content)

	case has(obj, keyTranslate):
		key, err := stringField(obj, keyTranslate, path)
		if err != nil {
			return nil, err
		}
		args, err := decodeList(obj, keyTranslateWith, path)
		if err != nil {
			return nil, err
		}
		c = NewTranslatable(key, args...)

	case has(obj, keyScore):
		score, ok := obj[keyScore].(map[string]any)
		if !ok {
			return nil, singleIssue(path+"/"+keyScore, CodeInvalidType, "expected object", obj[keyScore])
		}
		if !has(score, keyScoreName) || !has(score, keyScoreObjective) {
			return nil, singleIssue(path+"/"+keyScore, CodeRequired,
				"a score component requires a "+keyScoreName+" and "+keyScoreObjective, score)
		}
		scorePath := path + "/" + keyScore
		name, err := stringField(score, keyScoreName, scorePath)
		if err != nil {
			return nil, err
		}
		objective, err := stringField(score, keyScoreObjective, scorePath)
		if err != nil {
			return nil, err
		}
		sc := NewScore(name, objective)
		// score components can have a value sometimes, let's grab it
		if has(score, keyScoreValue) {
			value, err := stringField(score, keyScoreValue, scorePath)
			if err != nil {
				return nil, err
			}
			sc = sc.WithValue(value)
		}
		c = sc

	case has(obj, keySelector):
		pattern, err := stringField(obj, keySelector, path)
		if err != nil {
			return nil, err
		}
		separator, err := decodeSeparator(obj, path)
		if err != nil {
			return nil, err
		}
		sel := NewSelector(pattern)
		if separator != nil {
			sel = sel.WithSeparator(separator)
		}
		c = sel

	case has(obj, keyKeybind):
		keybind, err := stringField(obj, keyKeybind, path)
		if err != nil {
			return nil, err
		}
		c = NewKeybind(keybind)

	case has(obj, keyNBT):
		nbt, err := decodeNBT(obj, path)
		if err != nil {
			return nil, err
		}
		c = nbt

	default:
		return nil, singleIssue(path, CodeUnknownShape, "cannot decode object as a component: no recognized field", obj)
	}

	extra, err := decodeList(obj, keyExtra, path)
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		c = c.Append(extra...)
	}

	style, err := decodeStyle(obj, path)
	if err != nil {
		return nil, err
	}
	if !style.IsEmpty() {
		c = c.WithStyle(style)
	}
	return c, nil
}

func decodeNBT(obj map[string]any, path string) (Component, error) {
	nbtPath, err := stringField(obj, keyNBT, path)
	if err != nil {
		return nil, err
	}
	interpret := false
	if raw, ok := obj[keyNBTInterpret]; ok {
		b, ok := raw.(bool)
		if !ok {
			return nil, singleIssue(path+"/"+keyNBTInterpret, CodeInvalidType, "expected boolean", raw)
		}
		interpret = b
	}
	separator, err := decodeSeparator(obj, path)
	if err != nil {
		return nil, err
	}
	switch {
	case has(obj, keyNBTBlock):
		raw, err := stringField(obj, keyNBTBlock, path)
		if err != nil {
			return nil, err
		}
		pos, err := ParsePos(raw)
		if err != nil {
			return nil, reroot(err, path+"/"+keyNBTBlock)
		}
		block := NewBlockNBT(nbtPath, pos).WithInterpret(interpret)
		if separator != nil {
			block = block.WithSeparator(separator)
		}
		return block, nil
	case has(obj, keyNBTEntity):
		selector, err := stringField(obj, keyNBTEntity, path)
		if err != nil {
			return nil, err
		}
		// Entity lookups carry no separator; a separator field is still
		// validated above, then dropped.
		return NewEntityNBT(nbtPath, selector).WithInterpret(interpret), nil
	case has(obj, keyNBTStorage):
		raw, err := stringField(obj, keyNBTStorage, path)
		if err != nil {
			return nil, err
		}
		storage, err := ParseKey(raw)
		if err != nil {
			return nil, reroot(err, path+"/"+keyNBTStorage)
		}
		st := NewStorageNBT(nbtPath, storage).WithInterpret(interpret)
		if separator != nil {
			st = st.WithSeparator(separator)
		}
		return st, nil
	}
	return nil, singleIssue(path, CodeRequired,
		"an nbt component requires a "+keyNBTBlock+", "+keyNBTEntity+" or "+keyNBTStorage, obj)
}

func decodeSeparator(obj map[string]any, path string) (Component, error) {
	raw, ok := obj[keySeparator]
	if !ok {
		return nil, nil
	}
	return decodeNode(raw, path+"/"+keySeparator)
}

// decodeList decodes an optional array field of components in order.
func decodeList(obj map[string]any, key, path string) ([]Component, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, singleIssue(path+"/"+key, CodeInvalidType, "expected array", raw)
	}
	out := make([]Component, 0, len(arr))
	for i, el := range arr {
		c, err := decodeNode(el, path+"/"+key+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// EncodeTree converts a Component into its document tree. It is total for
// trees built through the public constructors; the dispatch is exhaustive
// over the closed variant set.
func EncodeTree(c Component) any {
	obj := map[string]any{}

	if style := c.ComponentStyle(); !style.IsEmpty() {
		encodeStyle(style, obj)
	}

	if children := c.Children(); len(children) > 0 {
		extra := make([]any, 0, len(children))
		for _, child := range children {
			extra = append(extra, EncodeTree(child))
		}
		obj[keyExtra] = extra
	}

	switch v := c.(type) {
	case Text:
		obj[keyText] = v.Content()
	case Translatable:
		obj[keyTranslate] = v.Key()
		if args := v.Args(); len(args) > 0 {
			with := make([]any, 0, len(args))
			for _, arg := range args {
				with = append(with, EncodeTree(arg))
			}
			obj[keyTranslateWith] = with
		}
	case Score:
		score := map[string]any{
			keyScoreName:      v.Name(),
			keyScoreObjective: v.Objective(),
		}
		if value, ok := v.Value(); ok {
			score[keyScoreValue] = value
		}
		obj[keyScore] = score
	case Selector:
		obj[keySelector] = v.Pattern()
		encodeSeparator(obj, v.Separator())
	case Keybind:
		obj[keyKeybind] = v.Keybind()
	case NBTBlock:
		obj[keyNBT] = v.NBTPath()
		obj[keyNBTInterpret] = v.Interpret()
		obj[keyNBTBlock] = v.Position().String()
		encodeSeparator(obj, v.Separator())
	case NBTEntity:
		obj[keyNBT] = v.NBTPath()
		obj[keyNBTInterpret] = v.Interpret()
		obj[keyNBTEntity] = v.Selector()
	case NBTStorage:
		obj[keyNBT] = v.NBTPath()
		obj[keyNBTInterpret] = v.Interpret()
		obj[keyNBTStorage] = v.Storage().String()
		encodeSeparator(obj, v.Separator())
	}

	return obj
}

func encodeSeparator(obj map[string]any, separator Component) {
	if separator != nil {
		obj[keySeparator] = EncodeTree(separator)
	}
}

// primitiveString reports the string form of a primitive document node.
// Numbers and booleans coerce to their textual form, matching the lenient
// reading the original wire format has always had.
func primitiveString(node any) (string, bool) {
	switch v := node.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	}
	return "", false
}

// stringField reads a required primitive field as a string.
func stringField(obj map[string]any, key, path string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", singleIssue(path+"/"+key, CodeRequired, "missing field "+key, obj)
	}
	s, ok := primitiveString(raw)
	if !ok {
		return "", singleIssue(path+"/"+key, CodeInvalidType, "expected string", raw)
	}
	return s, nil
}

func has(obj map[string]any, key string) bool {
	_, ok := obj[key]
	return ok
}

// reroot rebases the paths of nested Issues onto the given document path.
func reroot(err error, path string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Path = path + it.Path
		out[i] = it
	}
	return out
}
