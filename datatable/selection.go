package datatable

// Dataset gives the Selection access to the full dataset and the identity key
// of each row, in dataset order.
type Dataset func() (rows []Row, keys []Key)

// Selection is the set of selected row keys. It outlives filtering, sorting
// and paging: keys are only removed by an explicit action.
//
// Every mutation calls the observer synchronously with the selected rows of
// the full dataset, in dataset order.
type Selection struct {
	keys     map[Key]struct{}
	dataset  Dataset
	observer func(selected []Row)
}

func NewSelection(dataset Dataset) *Selection {
	return &Selection{
		keys:    map[Key]struct{}{},
		dataset: dataset,
	}
}

// OnChange registers the observer. Only one observer is kept; the last
// registration wins and nil unregisters.
func (s *Selection) OnChange(observer func(selected []Row)) {
	s.observer = observer
}

func (s *Selection) Toggle(key Key, checked bool) {
	if key, ok := identity(key); ok {
		if checked {
			s.keys[key] = struct{}{}
		} else {
			delete(s.keys, key)
		}
	}
	s.emit()
}

// SelectAll adds keys to the selection, keeping everything already selected.
func (s *Selection) SelectAll(keys []Key) {
	for _, key := range keys {
		if key, ok := identity(key); ok {
			s.keys[key] = struct{}{}
		}
	}
	s.emit()
}

// DeselectAll removes keys from the selection.
func (s *Selection) DeselectAll(keys []Key) {
	for _, key := range keys {
		if key, ok := identity(key); ok {
			delete(s.keys, key)
		}
	}
	s.emit()
}

func (s *Selection) Clear() {
	clear(s.keys)
	s.emit()
}

func (s *Selection) Has(key Key) bool {
	key, ok := identity(key)
	if !ok {
		return false
	}
	_, selected := s.keys[key]
	return selected
}

func (s *Selection) Len() int {
	return len(s.keys)
}

// AllSelected holds when the page is not empty and every key on it is
// selected.
func (s *Selection) AllSelected(pageKeys []Key) bool {
	if len(pageKeys) == 0 {
		return false
	}
	for _, key := range pageKeys {
		if !s.Has(key) {
			return false
		}
	}
	return true
}

// Indeterminate holds when something is selected but not the whole page.
func (s *Selection) Indeterminate(pageKeys []Key) bool {
	return len(s.keys) > 0 && !s.AllSelected(pageKeys)
}

// Rows returns the selected rows of the full dataset in dataset order. Keys
// whose row is no longer in the dataset stay selected but are not returned.
func (s *Selection) Rows() []Row {
	selected := []Row{}
	if s.dataset == nil || len(s.keys) == 0 {
		return selected
	}

	rows, keys := s.dataset()
	for i, row := range rows {
		if _, ok := s.keys[keys[i]]; ok {
			selected = append(selected, row)
		}
	}
	return selected
}

// Keys returns the selected keys present in the dataset, in dataset order.
func (s *Selection) Keys() []Key {
	result := []Key{}
	if s.dataset == nil || len(s.keys) == 0 {
		return result
	}

	_, keys := s.dataset()
	for _, key := range keys {
		if _, ok := s.keys[key]; ok {
			result = append(result, key)
		}
	}
	return result
}

func (s *Selection) emit() {
	if s.observer == nil {
		return
	}
	s.observer(s.Rows())
}

// identity normalizes a key so the same row is found whatever integer type
// the host used. Keys that cannot be map keys are rejected.
func identity(key Key) (Key, bool) {
	if p, ok := key.(positionKey); ok {
		return p, true
	}
	return normalizeKey(key)
}
