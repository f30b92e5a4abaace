package agent

// govGuideTriggers map input keywords to the canonical guide, checked in
// order so the more specific services come first.
var govGuideTriggers = []struct {
	name     string
	keywords []string
}{
	{name: "身份证办理", keywords: []string{"身份证"}},
	{name: "护照办理", keywords: []string{"护照"}},
	{name: "医保报销", keywords: []string{"医保报销", "医保"}},
	{name: "公积金提取", keywords: []string{"公积金提取", "公积金"}},
	{name: "个税申报", keywords: []string{"个税申报", "个税", "个人所得税"}},
	{name: "违章处理", keywords: []string{"违章"}},
	{name: "养老金领取", keywords: []string{"养老金", "养老保险"}},
}

// govGuides holds the full step-by-step service texts served verbatim.
var govGuides = map[string]string{
	"身份证办理": `亲爱的市民朋友，关于身份证办理，我来为您详细介绍：

【办理流程】
1. 准备材料
   - 户口本原件
   - 旧身份证（如有）
   - 近期免冠照片（也可现场拍摄）

2. 办理地点和方式
   - 就近选择户籍所在地派出所或户籍办理点
   - 建议提前通过互联网进行预约

3. 具体步骤
   - 到达现场后先取号
   - 填写《居民身份证申领登记表》
   - 验证身份信息
   - 采集照片（如需）
   - 缴纳工本费（首次办理免费）

4. 领取方式
   - 一般15-30天制作完成
   - 可选择现场领取或邮寄到家

【温馨提示】
✦ 首次申领免收工本费，丢失补办需缴费
✦ 照片可现场拍摄或自带（需符合规格要求）
✦ 建议避开工作日高峰时段办理
✦ 可通过'全国公安政务服务平台'预约办理
✦ 紧急情况可申请加急办理（可能需要额外费用）

如果您在办理过程中遇到任何问题，随时可以询问我！`,

	"医保报销": `亲爱的参保人，关于医保报销事项，我来为您详细说明：

【报销材料准备】
1. 必需材料
   - 医保卡
   - 有效身份证件
   - 医疗费用票据原件
   - 病历本或出院小结
   - 处方单据
   - 检查化验报告单

2. 报销途径选择
   A. 线下报销
      - 前往医保经办机构
      - 社区服务中心
      - 定点医院医保窗口
   B. 线上报销
      - 医保APP
      - 各地医保网上服务平台

3. 报销流程
   - 材料准备与审核
   - 填写报销申请表
   - 提交材料
   - 等待审核
   - 资金到账（一般5-15个工作日）

【温馨提示】
✦ 及时报销，发票超过3个月可能无法受理
✦ 保管好所有原始单据
✦ 大额医疗费用建议当面办理
✦ 可通过医保APP实时查询报销进度
✦ 异地就医先备案，报销更便捷

如有任何疑问，我很乐意为您解答！`,

	"公积金提取": `亲爱的缴存职工，关于公积金提取，我来为您详细介绍：

【提取条件】
1. 购房提取
   - 购买自住住房
   - 偿还住房贷款
   - 支付房租

2. 其他提取情形
   - 离职后提取
   - 退休提取
   - 大病医疗提取
   - 本人死亡或完全丧失劳动能力

【办理流程】
1. 准备材料
   - 身份证原件
   - 公积金联名卡
   - 提取证明材料（如购房合同、租赁合同等）

2. 办理方式
   A. 线上办理（推荐）
      - 公积金APP
      - 公积金网上服务大厅
   B. 线下办理
      - 公积金管理中心
      - 授权银行网点

3. 具体步骤
   - 选择提取类型
   - 提交申请材料
   - 等待审核
   - 资金到账（一般1-3个工作日）

【温馨提示】
✦ 提前了解提取条件和额度限制
✦ 准备完整的证明材料，避免多次往返
✦ 可通过APP预约办理，避免排队
✦ 部分业务支持'刷脸'办理
✦ 提取后建议查询账户变动情况

如果您在办理过程中有任何疑问，随时可以询问我哦！`,

	"个税申报": `亲爱的纳税人，关于个人所得税申报，我来为您详细说明：

【申报时间】
- 每月1日至15日进行上月收入申报
- 每年3-6月份进行年度汇算

【申报渠道】
1. 手机端
   - 个人所得税APP（推荐）
   - 微信小程序

2. 电脑端
   - 自然人电子税务局网站
   - 各地税务局网上办税平台

【申报流程】
1. 登录系统
   - 注册个人所得税账号
   - 实名认证

2. 信息确认
   - 核对收入信息
   - 确认专项附加扣除
   - 补充其他收入信息

3. 提交申报
   - 系统自动计算应纳税额
   - 确认无误后提交
   - 如有退税，等待退税到账

【温馨提示】
✦ 及时更新个人信息和专项附加扣除信息
✦ 妥善保管发票等税收凭证
✦ 设置申报提醒，避免超期
✦ 遇到问题可拨打12366咨询
✦ 注意保护个人税收信息安全

如果您在申报过程中遇到任何问题，我都可以为您解答！`,

	"违章处理": `亲爱的车主，关于交通违章处理，我来为您详细介绍：

【查询方式】
1. 线上查询
   - 交管12123APP（推荐）
   - 全国交通安全综合服务平台
   - 各地交管网站

2. 线下查询
   - 交警大队
   - 车管所
   - 违章处理点

【处理流程】
1. 线上处理（适用于部分轻微违章）
   - 登录12123APP
   - 查询违章记录
   - 选择需处理的违章
   - 在线缴纳罚款
   - 扣分自动处理

2. 线下处理
   - 前往指定地点
   - 提供车辆信息
   - 缴纳罚款
   - 处理扣分

【所需材料】
- 驾驶证
- 行驶证
- 车主身份证
- 违章通知书（如有）

【温馨提示】
✦ 及时处理违章，避免影响年检
✦ 注意违章处理期限
✦ 可设置违章提醒服务
✦ 累积记分周期为12个月
✦ 某些违章可能需要现场处理

如果您在处理过程中有任何疑问，随时可以询问我！`,

	"护照办理": `亲爱的市民朋友，关于护照办理，我来为您详细介绍：

【办理条件】
- 年满16周岁可独立办理
- 未满16周岁需监护人陪同
- 身份信息真实有效

【准备材料】
1. 基本材料
   - 身份证原件
   - 户口本原件
   - 近期证件照片

2. 特殊情况补充材料
   - 未成年人需提供监护人身份证明
   - 加急办理需提供证明材料

【办理流程】
1. 预约
   - 网上预约（推荐）
   - 现场取号

2. 现场办理
   - 资料审核
   - 照片采集
   - 面谈确认
   - 缴费

3. 领取
   - 一般7-10个工作日
   - 可选择现场领取或邮寄

【温馨提示】
✦ 照片需符合护照照片要求
✦ 建议提前网上预约，避免排队
✦ 可办理加急服务（额外收费）
✦ 注意护照有效期（一般10年）
✦ 建议预留充足办理时间

如果您在办理过程中遇到任何问题，随时可以询问我！`,

	"养老金领取": `亲爱的退休人员，关于养老金领取，我来为您详细说明：

【领取条件】
1. 基本条件
   - 达到法定退休年龄
   - 缴费年限符合规定
   - 办理退休手续

2. 特殊情况
   - 提前退休
   - 特殊工种退休
   - 病退

【办理材料】
- 身份证原件
- 退休证
- 社保卡
- 银行卡
- 照片
- 退休审批表

【办理流程】
1. 提交申请
   - 前往社保经办机构
   - 填写领取申请表
   - 提供相关材料

2. 信息确认
   - 核实个人信息
   - 确认待遇领取方式
   - 选择发放账户

3. 待遇发放
   - 首次发放一般在1-2个月内
   - 后续按月发放

【温馨提示】
✦ 确保社保缴费记录完整
✦ 可选择银行代发或社保卡领取
✦ 注意及时更新个人信息
✦ 定期领取待遇资格认证
✦ 如有变动及时报告

如果您在领取过程中有任何疑问，我都可以为您解答！`,
}
