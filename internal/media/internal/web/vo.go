package web

// TmpAuthCodeReq Key为对象键, 打包照片统一在 packages/ 前缀下
type TmpAuthCodeReq struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

type COSTmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int64  `json:"startTime"`
	ExpiredTime  int64  `json:"expiredTime"`
}
