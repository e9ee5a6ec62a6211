package apierrors

const (
	MsgMissingFields       = "missingRequiredFields"
	MsgInvalidRole         = "invalidRole"
	MsgEmailTaken          = "emailAlreadyRegistered"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgMissingToken        = "missingToken"
	MsgInvalidToken        = "invalidToken"
	MsgSessionEnded        = "sessionEnded"
	MsgForbidden           = "insufficientPermissions"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgEmployeeNotFound    = "employeeNotFound"
	MsgAssigneeNotEmployee = "assigneeNotEmployee"
	MsgInvalidStatus       = "invalidStatus"
	MsgTaskNotFound        = "taskNotFound"
	MsgFailRegister        = "failRegister"
	MsgFailLogin           = "failLogin"
	MsgFailLogout          = "failLogout"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailListTasks       = "failListTasks"
	MsgFailListEmployees   = "failListEmployees"
	MsgFailUpdateStatus    = "failUpdateStatus"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgFailAuthCheck       = "failAuthCheck"
)
