package i18n

import (
	"strings"
	"sync"
)

// Message IDs for built-in validation descriptions.
const (
	NotNull            = "not_null"
	NotUndefined       = "not_undefined"
	NotTuple           = "not_tuple"
	TupleSize          = "tuple_size"
	NotObject          = "not_object"
	NullOrUndefined    = "null_or_undefined"
	ConstantMismatch   = "constant_mismatch"
	InvalidSchema      = "invalid_schema"
	NotArray           = "not_array"
	NoneOfTypes        = "none_of_types"
	NotOneOfTypes      = "not_one_of_types"
	NotString          = "not_string"
	EmptyString        = "empty_string"
	TooLong            = "too_long"
	TooShort           = "too_short"
	PatternMismatch    = "pattern_mismatch"
	NotUUID            = "not_uuid"
	NotNumber          = "not_number"
	Zero               = "zero"
	NotInteger         = "not_integer"
	TooLarge           = "too_large"
	TooSmall           = "too_small"
	NotBoolean         = "not_boolean"
	NotDate            = "not_date"
	InFuture           = "in_future"
	InPast             = "in_past"
	ValidationFailed   = "validation_failed"
	NotValidSchemaPath = "not_valid_schema"
)

// Translator retrieves localized descriptions for message IDs.
// data provides optional values substituted into "{name}" placeholders
// (for example "cause" or "path").
type Translator interface {
	Message(id string, data map[string]string) string
}

var english = map[string]string{
	NotNull:            "The value is not null.",
	NotUndefined:       "The value is not undefined.",
	NotTuple:           "The value is not a tuple.",
	TupleSize:          "Tuple size mismatched.",
	NotObject:          "The value is not an object.",
	NullOrUndefined:    "The value is null or undefined.",
	ConstantMismatch:   "The constant value mismatched",
	InvalidSchema:      "Invalid schema",
	NotArray:           "The value is not an array.",
	NoneOfTypes:        "The value is none of types.",
	NotOneOfTypes:      "The value is not one of types. ({cause})",
	NotString:          "The value is not a string.",
	EmptyString:        "The value is an empty string.",
	TooLong:            "Length of the value is larger than max-length.",
	TooShort:           "Length of the value is smaller than min-length.",
	PatternMismatch:    "The value did not match the pattern.",
	NotUUID:            "The value is not a UUID.",
	NotNumber:          "The value is not a number.",
	Zero:               "The value is zero.",
	NotInteger:         "The value is not an integer.",
	TooLarge:           "The value is larger than max-value.",
	TooSmall:           "The value is smaller than min-value.",
	NotBoolean:         "The value is not a boolean.",
	NotDate:            "The value is not a Date.",
	InFuture:           "The value is future.",
	InPast:             "The value is past.",
	ValidationFailed:   "Validation failed.",
	NotValidSchemaPath: "{path} is not valid schema.",
}

var japanese = map[string]string{
	NotNull:            "値がnullではありません。",
	NotUndefined:       "値がundefinedではありません。",
	NotTuple:           "値がタプルではありません。",
	TupleSize:          "タプルの長さが一致しません。",
	NotObject:          "値がオブジェクトではありません。",
	NullOrUndefined:    "値がnullまたはundefinedです。",
	ConstantMismatch:   "定数値が一致しません。",
	InvalidSchema:      "スキーマが不正です。",
	NotArray:           "値が配列ではありません。",
	NoneOfTypes:        "値がいずれの型にも一致しません。",
	NotOneOfTypes:      "値がすべての型に一致しません。({cause})",
	NotString:          "値が文字列ではありません。",
	EmptyString:        "値が空文字列です。",
	TooLong:            "値の長さが最大長を超えています。",
	TooShort:           "値の長さが最小長に足りません。",
	PatternMismatch:    "値がパターンに一致しません。",
	NotUUID:            "値がUUIDではありません。",
	NotNumber:          "値が数値ではありません。",
	Zero:               "値がゼロです。",
	NotInteger:         "値が整数ではありません。",
	TooLarge:           "値が最大値を超えています。",
	TooSmall:           "値が最小値を下回っています。",
	NotBoolean:         "値が真偽値ではありません。",
	NotDate:            "値が日付ではありません。",
	InFuture:           "値が未来の日時です。",
	InPast:             "値が過去の日時です。",
	ValidationFailed:   "検証に失敗しました。",
	NotValidSchemaPath: "{path} は有効なスキーマではありません。",
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(id string, data map[string]string) string {
	dict := english
	if t.lang == "ja" {
		dict = japanese
	}
	msg, ok := dict[id]
	if !ok {
		if msg, ok = english[id]; !ok {
			return id
		}
	}
	return expand(msg, data)
}

func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil Translator restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given ID using the current Translator.
func T(id string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(id, data)
}
