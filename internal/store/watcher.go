package store

import "os"

// Watcher answers the non-blocking "has the watched file changed since last
// check" question by comparing modification times. Polling once per frame is
// plenty for a hand-edited file, needs no platform-specific machinery, and
// both false negatives and false positives are acceptable: the former
// degrades to a manual reload, the latter to a redundant one.
type Watcher struct {
	path    string
	modTime int64
	size    int64
}

// NewWatcher captures the file's current state as the baseline.
func NewWatcher(path string) *Watcher {
	w := &Watcher{path: path}
	w.capture()
	return w
}

func (w *Watcher) capture() {
	if info, err := os.Stat(w.path); err == nil {
		w.modTime = info.ModTime().UnixNano()
		w.size = info.Size()
	}
}

// Changed reports whether the file differs from the last observed state and
// re-baselines when it does. Stat errors (file briefly missing during an
// atomic replace) read as "no change".
func (w *Watcher) Changed() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	if info.ModTime().UnixNano() == w.modTime && info.Size() == w.size {
		return false
	}
	w.modTime = info.ModTime().UnixNano()
	w.size = info.Size()
	return true
}

// Reset re-baselines after the program itself wrote the file, so the next
// poll does not read back our own save as an external change.
func (w *Watcher) Reset() {
	w.capture()
}
