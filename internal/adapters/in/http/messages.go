package http

import (
	"errors"
	"fmt"
	"net/http"

	"ordersheet/internal/pkg/errs"
)

// Messages shown to the operator. The front end displays them verbatim.
const (
	msgLoaded   = "โหลดข้อมูลสำเร็จ"
	msgSaved    = "บันทึกข้อมูลเรียบร้อยแล้ว"
	msgUpdated  = "แก้ไขข้อมูลเรียบร้อยแล้ว"
	msgDeleted  = "ลบข้อมูลเรียบร้อยแล้ว %d รายการ"
	msgBusy     = "ระบบกำลังบันทึกข้อมูลของผู้ใช้อื่นอยู่ กรุณาลองใหม่อีกครั้ง"
	msgNotFound = "ไม่พบเลขที่ออเดอร์: %s"
	msgInvalid  = "ข้อมูลไม่ถูกต้อง: %s"
	msgFailed   = "เกิดข้อผิดพลาด: %s"
)

// failure maps an operation error onto an HTTP status, an outcome label and a message.
func failure(err error, orderNo string) (int, string, string) {
	switch {
	case errors.Is(err, errs.ErrResourceIsBusy):
		return http.StatusConflict, outcomeBusy, msgBusy
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, outcomeNotFound, fmt.Sprintf(msgNotFound, orderNo)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, outcomeInvalid, fmt.Sprintf(msgInvalid, err)
	default:
		return http.StatusInternalServerError, outcomeError, fmt.Sprintf(msgFailed, err)
	}
}
