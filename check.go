package axjson

import "strconv"

// CheckSchema verifies that every leaf of fragment is a schema shape (nil, a
// Validator, a constant, or a nested tuple/record of those) without looking
// at any data. path prefixes error locations. The fragment is returned
// unchanged and is never modified.
func CheckSchema(fragment any, path string) (any, error) {
	if err := checkFragment(fragment, path); err != nil {
		return nil, err
	}
	return fragment, nil
}

func checkFragment(fragment any, path string) error {
	switch classify(fragment) {
	case fragmentNull, fragmentValidator, fragmentConstant:
		return nil
	case fragmentTuple:
		elems, _ := AsSlice(fragment)
		for i, e := range elems {
			if err := checkFragment(e, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		return nil
	case fragmentRecord:
		m, _ := AsMap(fragment)
		for _, k := range sortedKeys(m) {
			if err := checkFragment(m[k], path+"."+k); err != nil {
				return err
			}
		}
		return nil
	default:
		return &InvalidSchemaError{Path: path}
	}
}
