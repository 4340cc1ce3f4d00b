package domain

// Student is a directory entry served by the directory service.
type Student struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	MaritalStatus bool   `json:"maritalStatus"`
}

// BoardPost is a message on the directory board. UserID is informational and not enforced.
type BoardPost struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"`
	Content string `json:"content"`
}
