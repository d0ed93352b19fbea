package process_monitor

import (
	"errors"

	"github.com/go-ole/go-ole"
)

// wbemTimedOut is WBEM_E_TIMED_OUT, the result of a NextEvent call that saw
// no event within its timeout.
const wbemTimedOut = 0x80043001

// isTimeout reports whether err is a WMI timeout, either as the call's HRESULT
// or as the scode of the dispatch exception wrapping it.
func isTimeout(err error) bool {
	var oleErr *ole.OleError
	if !errors.As(err, &oleErr) {
		return false
	}
	if oleErr.Code() == wbemTimedOut {
		return true
	}
	info, ok := oleErr.SubError().(ole.EXCEPINFO)
	return ok && info.SCODE() == wbemTimedOut
}
