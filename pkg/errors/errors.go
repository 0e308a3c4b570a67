package errors

import "errors"

// ErrOptimisticLock 乐观锁冲突：课程已在另一端（别的设备或标签页）被修改
var ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")
